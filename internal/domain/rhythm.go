package domain

// Chronotype is a coarse classification of natural sleep-timing preference,
// derived from the sleep midpoint.
// @Description Chronotype classification based on sleep midpoint.
type Chronotype string

const (
	ChronotypeEarlyBird    Chronotype = "EarlyBird"
	ChronotypeIntermediate Chronotype = "Intermediate"
	ChronotypeNightOwl     Chronotype = "NightOwl"
	// ChronotypeUnknown is reported when there is no data to classify.
	ChronotypeUnknown Chronotype = "N/A"
)

// RhythmProfile is the derived circadian profile for a single sleep interval.
// Marker times are zero-padded HH:MM strings; the curve arrays are the raw
// (hour, energy) samples for downstream consumers.
// @Description Circadian rhythm profile: time markers plus a 24h energy curve.
type RhythmProfile struct {
	// Clock time halfway between sleep onset and waking
	Midpoint string `json:"midpoint" example:"03:00"`
	// Midpoint as a real-valued hour, used for chronotype bucketing
	MidpointHour float64 `json:"midpoint_hour" example:"3.0"`
	// Chronotype derived from the midpoint
	Chronotype Chronotype `json:"chronotype" example:"EarlyBird"`
	// Wake-up marker
	WakeTime string `json:"wake_time" example:"07:00"`
	// Morning performance peak (wake + 3h)
	MorningPeak string `json:"morning_peak" example:"10:00"`
	// Afternoon dip (wake + 7h)
	AfternoonDip string `json:"afternoon_dip" example:"14:00"`
	// Evening peak (wake + 11h)
	EveningPeak string `json:"evening_peak" example:"18:00"`
	// Bedtime marker (the reported sleep time)
	Bedtime string `json:"bedtime" example:"23:00"`
	// Sampled hours over [0, 24], 100 points
	Hours []float64 `json:"hours"`
	// Predicted energy at each sampled hour, clamped to [0, 10]
	Energy []float64 `json:"energy"`
}

// LogAverages holds rolling averages over a user's sleep logs.
// @Description Rolling averages over past sleep logs.
type LogAverages struct {
	// Mean sleep debt in hours, 2-decimal rounding
	AvgDebt float64 `json:"avg_debt" example:"1.25"`
	// Chronotype bucketed from the averaged midpoint hour; "N/A" with no logs
	AvgChronotype Chronotype `json:"avg_chronotype" example:"Intermediate"`
	// Mean reported energy level, 1-decimal rounding
	AvgEnergy float64 `json:"avg_energy" example:"6.5"`
	// Number of logs aggregated
	LogCount int `json:"log_count" example:"12"`
}

// SleepReport is the full computed pipeline for a user's latest sleep log.
// @Description Sleep report: debt, rhythm, predicted quality, recommendations.
type SleepReport struct {
	// Sleep debt in hours for the latest log
	SleepDebt float64 `json:"sleep_debt" example:"1.5"`
	// Circadian profile for the latest log
	Rhythm RhythmProfile `json:"rhythm"`
	// Predicted sleep quality, 1-10
	Quality int `json:"quality" example:"7"`
	// Ordered recommendation lines
	Recommendations []string `json:"recommendations"`
	// Rolling averages over all logs
	Averages LogAverages `json:"averages"`
}

// PredictQualityRequest is the request body for a direct quality prediction.
// @Description Feature vector for a sleep quality prediction.
type PredictQualityRequest struct {
	// Sleep duration in hours
	SleepDurationHours float64 `json:"sleep_duration_hours" validate:"required,gt=0,lte=24" example:"7.5"`
	// Physical activity in minutes
	ActivityMinutes int `json:"activity_minutes" validate:"min=0,max=1440" example:"60"`
	// Stress level, 1-10
	StressLevel int `json:"stress_level" validate:"required,min=1,max=10" example:"5"`
}

// PredictQualityResponse is the response body for a quality prediction.
type PredictQualityResponse struct {
	// Predicted quality, 1-10; 6 when the model is untrained
	Quality int `json:"quality" example:"7"`
	// True when the bundled model produced the score, false for the fallback
	ModelTrained bool `json:"model_trained" example:"true"`
}

// ReportDocument is an exported report rendered for download.
type ReportDocument struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
