package professional

// SliceStatus reports how a profile slice was resolved, so callers can tell
// "empty because there is no data" from "empty because the fetch failed".
type SliceStatus string

const (
	SliceOK     SliceStatus = "ok"
	SliceEmpty  SliceStatus = "empty"
	SliceFailed SliceStatus = "failed"
)

// ProfileView is the composed read model for a professional's full profile.
// The base attributes are mandatory; every other slice is best-effort.
type ProfileView struct {
	Professional *Professional `json:"professional"`

	Specialties        []*Specialty        `json:"specialties"`
	Certifications     []*Certification    `json:"certifications"`
	Projects           []*PortfolioProject `json:"projects"`
	BackgroundChecks   []*BackgroundCheck  `json:"background_checks"`
	SocialAccounts     []*SocialAccount    `json:"social_accounts"`
	Addresses          []*Address          `json:"addresses"`
	VerifiedCheckCount int                 `json:"verified_check_count"`
	Score              float64             `json:"score"`

	SliceStatuses map[string]SliceStatus `json:"slice_statuses"`
}
