package entity

// Invitation is the static content of the invitation site: the couple, the
// event, the venue and the assets around them. It is loaded once at startup
// and served read-only.
type Invitation struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	GroomName   string       `json:"groom_name"`
	BrideName   string       `json:"bride_name"`
	ParentGroom string       `json:"parent_groom"`
	ParentBride string       `json:"parent_bride"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Venue       Venue        `json:"venue"`
	Agenda      []AgendaItem `json:"agenda"`
	Audio       *AudioTrack  `json:"audio,omitempty"`
	ShareImages ShareImages  `json:"share_images"`
}

type Venue struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	MapsURL   string `json:"maps_url"`
	MapsEmbed string `json:"maps_embed"`
}

type AgendaItem struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`
	Address   string `json:"address"`
}

type AudioTrack struct {
	Src      string `json:"src"`
	Title    string `json:"title"`
	Autoplay bool   `json:"autoplay"`
	Loop     bool   `json:"loop"`
}

type ShareImages struct {
	OgImage     string `json:"og_image"`
	Thumbnail   string `json:"thumbnail"`
	CouplePhoto string `json:"couple_photo"`
	Banner      string `json:"banner"`
}
