package httpapi

import (
	"time"

	"github.com/KirkDiggler/talent-api/internal/engine"
	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/talents"
)

type talentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	MaxPoints   int    `json:"maxPoints"`
	Row         int    `json:"row"`
	Points      int    `json:"points"`
}

type treeResponse struct {
	Name            string           `json:"name"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	PointsSpent     int              `json:"pointsSpent"`
	RowRequirements map[int]int      `json:"rowRequirements"`
	Talents         []talentResponse `json:"talents"`
}

type rowResponse struct {
	Row         int  `json:"row"`
	Requirement int  `json:"requirement"`
	Met         bool `json:"met"`
}

type progressionResponse struct {
	Level               int   `json:"level"`
	Experience          int64 `json:"experience"`
	NextLevelExperience int64 `json:"nextLevelExperience"`
}

type getTreeResponse struct {
	Tree treeResponse  `json:"tree"`
	Rows []rowResponse `json:"rows"`
}

type commandResponse struct {
	Outcome     string              `json:"outcome"`
	Allowed     bool                `json:"allowed"`
	Talent      talentResponse      `json:"talent"`
	PointsSpent int                 `json:"pointsSpent"`
	Requirement int                 `json:"requirement,omitempty"`
	Rows        []rowResponse       `json:"rows"`
	Progression progressionResponse `json:"progression"`
}

type statusResponse struct {
	Loaded     bool       `json:"loaded"`
	Generation uint64     `json:"generation"`
	LoadedAt   *time.Time `json:"loadedAt,omitempty"`
	TreeCount  int        `json:"treeCount"`
}

type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func talentFromEntity(t *entities.Talent) talentResponse {
	if t == nil {
		return talentResponse{}
	}
	return talentResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		ImageURL:    t.ImageURL,
		MaxPoints:   t.MaxPoints,
		Row:         t.Row,
		Points:      t.Points,
	}
}

func treeFromEntity(t *entities.Tree) treeResponse {
	talentList := make([]talentResponse, 0, len(t.Talents))
	for _, talent := range engine.SortedTalents(t) {
		talentList = append(talentList, talentFromEntity(talent))
	}
	return treeResponse{
		Name:            t.Name,
		Title:           t.Title,
		Description:     t.Description,
		PointsSpent:     t.PointsSpent,
		RowRequirements: t.RowRequirements,
		Talents:         talentList,
	}
}

func rowsFromEntities(rows []entities.RowState) []rowResponse {
	out := make([]rowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowResponse(row))
	}
	return out
}

func progressionFromEntity(p entities.Progression) progressionResponse {
	return progressionResponse(p)
}

func statusFromOutput(o *talents.GetStatusOutput) statusResponse {
	resp := statusResponse{
		Loaded:     o.Loaded,
		Generation: o.Generation,
		TreeCount:  o.TreeCount,
	}
	if o.Loaded {
		at := o.LoadedAt.UTC()
		resp.LoadedAt = &at
	}
	return resp
}
