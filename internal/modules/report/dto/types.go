package dto

type PeriodInput struct {
	Granularity string
	Count       int
}

type TopicHoursOutput struct {
	Topic string
	Hours float64
}

type PeriodStatsOutput struct {
	Label  string
	Topics []TopicHoursOutput
	Total  float64
}
