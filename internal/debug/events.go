package debug

// TableStartData contains information about the start of a table-wide width operation.
type TableStartData struct {
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	TotalWidth int    `json:"total_width"`
	Target     int    `json:"target"`
	Mode       string `json:"mode"` // "wrap", "truncate"
	KeepWords  bool   `json:"keep_words,omitempty"`
	Priority   string `json:"priority,omitempty"`
}

// TableEndData contains information about the end of a table-wide width operation.
type TableEndData struct {
	Widths        []int `json:"widths"`
	ReworkedCells int   `json:"reworked_cells"`
	ElapsedMs     int64 `json:"elapsed_ms"`
}

// AllocateData contains the outcome of a width allocation pass.
type AllocateData struct {
	Before []int `json:"before"`
	After  []int `json:"after"`
	Mins   []int `json:"mins"`
	Target int   `json:"target"`
	Steps  int   `json:"steps"`
}

// PickData contains a single column decrement chosen by the shrink strategy.
type PickData struct {
	Col   int `json:"col"`
	Width int `json:"width"` // column width after the decrement
}

// SelectData contains one work item emitted by the shrink-target selector.
type SelectData struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Width int `json:"width"` // content budget after padding
}

// CellData contains information about one rewritten cell.
type CellData struct {
	Row      int `json:"row"`
	Col      int `json:"col"`
	Width    int `json:"width"`
	OldWidth int `json:"old_width"`
	Lines    int `json:"lines"`
}
