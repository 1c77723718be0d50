package models

type TriageLevel string

const (
	TriageLevelCritical TriageLevel = "critical"
	TriageLevelUrgent   TriageLevel = "urgent"
	TriageLevelRoutine  TriageLevel = "routine"
)
