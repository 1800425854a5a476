package models

// MediaConfig is a singleton record; fixed defaults are merged on read.
type MediaConfig struct {
	Logo      string `json:"logo"`
	HeroImg   string `json:"heroImg"`
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
}
