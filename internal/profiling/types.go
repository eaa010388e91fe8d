package profiling

// Summary holds the basic summary statistics of one numeric column.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// Distribution describes the shape of one numeric column.
type Distribution struct {
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	IsNormal bool    `json:"is_normal"`
	ShapiroP float64 `json:"shapiro_p"`
}

// ColumnProfile is the complete statistical profile of one catalog column.
type ColumnProfile struct {
	Column       string       `json:"column"`
	SampleSize   int          `json:"sample_size"`
	Summary      Summary      `json:"summary"`
	Distribution Distribution `json:"distribution"`
	Outliers     int          `json:"outliers"`
	NoiseCoeff   float64      `json:"noise_coefficient"`
}
