package responses

import "time"

type BMIReportRow struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
	Height string `json:"height"`
	Weight string `json:"weight"`
	BMI    string `json:"bmi"`
	Status string `json:"status"`
}

type BMIReport struct {
	Rows        []BMIReportRow `json:"rows"`
	GeneratedAt time.Time      `json:"generated_at"`
	Pairing     string         `json:"pairing"`
}

type BMIReportExport struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
	RowCount   int       `json:"row_count"`
}
