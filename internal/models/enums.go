// internal/models/enums.go
package models

// EducationLevel is the student's current level of study.
type EducationLevel string

const (
	EducationDiploma EducationLevel = "Diploma"
	EducationUG      EducationLevel = "UG"
	EducationPG      EducationLevel = "PG"
	EducationPhD     EducationLevel = "PhD"
)

// InstitutionType classifies the student's institution.
type InstitutionType string

const (
	InstitutionGovernment InstitutionType = "Government"
	InstitutionPrivate    InstitutionType = "Private"
	InstitutionAutonomous InstitutionType = "Autonomous"
	InstitutionOpen       InstitutionType = "Open"
)

// BackgroundIndicator marks a background category a student self-reports.
type BackgroundIndicator string

const (
	BackgroundRural            BackgroundIndicator = "Rural"
	BackgroundFirstGeneration  BackgroundIndicator = "First-generation"
	BackgroundFinancialSupport BackgroundIndicator = "Financial support"
	BackgroundDisabled         BackgroundIndicator = "Disabled"
	BackgroundMinority         BackgroundIndicator = "Minority"
)

// OpportunityGoal is a category of opportunity the student is looking for.
type OpportunityGoal string

const (
	GoalScholarships OpportunityGoal = "Scholarships"
	GoalInternships  OpportunityGoal = "Internships"
	GoalResearch     OpportunityGoal = "Research"
	GoalSkills       OpportunityGoal = "Skills"
	GoalGovtExams    OpportunityGoal = "Govt Exams"
)

// MissedFrequency is the student's self-reported history of missing
// opportunities they were eligible for.
type MissedFrequency string

const (
	MissedManyTimes   MissedFrequency = "Yes many times"
	MissedOnceOrTwice MissedFrequency = "Once or twice"
	MissedNever       MissedFrequency = "No"
)

// AwarenessLevel is derived 1:1 from MissedFrequency.
type AwarenessLevel string

const (
	AwarenessLow    AwarenessLevel = "Low"
	AwarenessMedium AwarenessLevel = "Medium"
	AwarenessHigh   AwarenessLevel = "High"
)

// VisibilityLevel rates how well-promoted an opportunity is.
type VisibilityLevel string

const (
	VisibilityHigh   VisibilityLevel = "High"
	VisibilityMedium VisibilityLevel = "Medium"
	VisibilityLow    VisibilityLevel = "Low"
)

// ImpactLevel rates how much an opportunity can change a student's path.
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "High"
	ImpactMedium ImpactLevel = "Medium"
	ImpactLow    ImpactLevel = "Low"
)

// MissProbability estimates how likely a qualifying student is to
// overlook an opportunity.
type MissProbability string

const (
	MissHigh   MissProbability = "High"
	MissMedium MissProbability = "Medium"
	MissLow    MissProbability = "Low"
)
