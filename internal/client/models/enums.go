package models

// FirmStatus is the pipeline stage of a Firm.
type FirmStatus string

const (
	FirmResearching  FirmStatus = "Researching"
	FirmApplied      FirmStatus = "Applied"
	FirmInterviewing FirmStatus = "Interviewing"
	FirmOffer        FirmStatus = "Offer"
	FirmRejected     FirmStatus = "Rejected"
)

// FirmStatuses lists every status in pipeline order.
var FirmStatuses = []FirmStatus{FirmResearching, FirmApplied, FirmInterviewing, FirmOffer, FirmRejected}

func (s FirmStatus) Valid() bool { return contains(FirmStatuses, s) }

// InterviewType classifies a mock interview.
type InterviewType string

const (
	InterviewBehavioral InterviewType = "Behavioral"
	InterviewTechnical  InterviewType = "Technical"
	InterviewCase       InterviewType = "Case"
	InterviewFit        InterviewType = "Fit"
)

var InterviewTypes = []InterviewType{InterviewBehavioral, InterviewTechnical, InterviewCase, InterviewFit}

func (t InterviewType) Valid() bool { return contains(InterviewTypes, t) }

// ReviewStatus tracks how well a MarketIntel note is known.
type ReviewStatus string

const (
	ReviewNeeded          ReviewStatus = "Need to Review"
	ReviewSolid           ReviewStatus = "Solid"
	ReviewCoffeeChatReady ReviewStatus = "Coffee Chat Ready"
)

var ReviewStatuses = []ReviewStatus{ReviewNeeded, ReviewSolid, ReviewCoffeeChatReady}

func (r ReviewStatus) Valid() bool { return contains(ReviewStatuses, r) }

// QuestionKind selects one of the two question banks.
type QuestionKind string

const (
	QuestionBehavioral QuestionKind = "behavioral"
	QuestionTechnical  QuestionKind = "technical"
)

var QuestionKinds = []QuestionKind{QuestionBehavioral, QuestionTechnical}

func (k QuestionKind) Valid() bool { return contains(QuestionKinds, k) }

// Categories returns the category enum of the bank.
func (k QuestionKind) Categories() []QuestionCategory {
	switch k {
	case QuestionBehavioral:
		return BehavioralCategories
	case QuestionTechnical:
		return TechnicalCategories
	default:
		return nil
	}
}

// QuestionCategory is the per-bank topic of a question.
type QuestionCategory string

var BehavioralCategories = []QuestionCategory{
	"Leadership", "Teamwork", "Conflict", "Failure", "Motivation", "Strengths & Weaknesses", "Other",
}

var TechnicalCategories = []QuestionCategory{
	"Accounting", "Valuation", "DCF", "LBO", "M&A", "Markets", "Brain Teaser", "Other",
}

// Difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool { return contains(Difficulties, d) }

// ResourceType describes what a Resource points at.
type ResourceType string

const (
	ResourceDocument ResourceType = "Document"
	ResourceVideo    ResourceType = "Video"
	ResourceBook     ResourceType = "Book"
	ResourceLink     ResourceType = "Link"
)

var ResourceTypes = []ResourceType{ResourceDocument, ResourceVideo, ResourceBook, ResourceLink}

func (t ResourceType) Valid() bool { return contains(ResourceTypes, t) }

// ResourceCategory groups resources on the library screen.
type ResourceCategory string

const (
	ResourceTechnicals ResourceCategory = "Technicals"
	ResourceBehavioral ResourceCategory = "Behavioral"
	ResourceNetworking ResourceCategory = "Networking"
	ResourceIndustry   ResourceCategory = "Industry"
	ResourceGeneral    ResourceCategory = "General"
)

var ResourceCategories = []ResourceCategory{
	ResourceTechnicals, ResourceBehavioral, ResourceNetworking, ResourceIndustry, ResourceGeneral,
}

func (c ResourceCategory) Valid() bool { return contains(ResourceCategories, c) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
