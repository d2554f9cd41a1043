package dto

type DateRangeOutput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScanOutput struct {
	RecordsProcessed int             `json:"records_processed"`
	DataTypes        []string        `json:"data_types"`
	DateRange        DateRangeOutput `json:"date_range"`
	Warnings         []string        `json:"warnings"`
}
