package model

// Page is the dashboard as a whole: a title block, the numbered chart
// sections in display order, and a closing notice below a divider.
type Page struct {
	Locale   string    `json:"locale"`
	Title    string    `json:"title"`
	TabTitle string    `json:"tabTitle"`
	Caption  string    `json:"caption"`
	Layout   string    `json:"layout"`
	Seed     uint64    `json:"seed"`
	Sections []Section `json:"sections"`
	Notice   Notice    `json:"notice"`
}

type Section struct {
	Index   int        `json:"index"`
	Heading string     `json:"heading"`
	Charts  []ChartRef `json:"charts"`
}

// ChartRef points at one rendered chart. Sections with two refs are laid out
// as two columns.
type ChartRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Kind     Kind   `json:"kind"`
	ImageURL string `json:"imageUrl"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type Notice struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}
