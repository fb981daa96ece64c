package jobs

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the scorer.
type Handler struct {
	Scorer *Scorer
}

// NewHandler constructs a Handler.
func NewHandler(scorer *Scorer) *Handler {
	return &Handler{Scorer: scorer}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.recommend)
}

type recommendRequest struct {
	Skills json.RawMessage `json:"skills"`
}

type recommendResponse struct {
	Success bool             `json:"success"`
	Jobs    []Recommendation `json:"jobs"`
}

func (h *Handler) recommend(c *gin.Context) {
	skills, err := decodeSkills(c)
	if err != nil {
		metrics.IncJobsRecommendFailed()
		respond.Failure(c, http.StatusInternalServerError, err.Error())
		return
	}

	recs := h.Scorer.Recommend(skills)
	metrics.IncJobsRecommend()
	c.Set(middleware.JobsReturnedKey, len(recs))
	respond.OK(c, recommendResponse{Success: true, Jobs: recs})
}

// decodeSkills requires a JSON object body. A missing or null "skills" field
// is an empty list; any other non string-array value is an InputError.
func decodeSkills(c *gin.Context) ([]string, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, &InputError{Reason: "unable to read body"}
	}
	var req *recommendRequest
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		return nil, &InputError{Reason: "body must be a JSON object"}
	}
	if len(req.Skills) == 0 || string(req.Skills) == "null" {
		return []string{}, nil
	}
	var skills []string
	if err := json.Unmarshal(req.Skills, &skills); err != nil {
		return nil, &InputError{Reason: "skills must be a list of strings"}
	}
	return skills, nil
}
