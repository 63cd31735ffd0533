package domain

// APIEntry is one row of the public-apis directory. JSON field names mirror
// the upstream payload exactly and must not be renamed.
type APIEntry struct {
	API         string `json:"API"`
	Description string `json:"Description"`
	Auth        string `json:"Auth"`
	HTTPS       bool   `json:"HTTPS"`
	Cors        string `json:"Cors"`
	Link        string `json:"Link"`
	Category    string `json:"Category"`
}
