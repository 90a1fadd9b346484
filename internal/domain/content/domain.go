package content

type Hieroglyph struct {
	ID          int64   `json:"id"`
	Character   string  `json:"character"`
	Pinyin      string  `json:"pinyin"`
	Translation string  `json:"translation"`
	Example     *string `json:"example,omitempty"`
}
