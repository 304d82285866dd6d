package domain

// Warning stages.
const (
	StageAchievement = "achievement"
	StageManager     = "manager"
	StageRanking     = "ranking"
	StageReconcile   = "reconcile"
)

// Warning describes a recovered per-item failure. The item contributed
// nothing to the result.
type Warning struct {
	Stage   string `json:"stage"`
	Subject string `json:"subject"`
	Reason  string `json:"reason"`
}
