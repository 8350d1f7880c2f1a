package designs

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/trynex/lifestyle-backend/models"
	"github.com/trynex/lifestyle-backend/pkg/response"
)

type DesignProvider interface {
	CreateCustomDesign(design *models.CustomDesign) error
	GetCustomDesignsBySession(sessionID string) ([]models.CustomDesign, error)
}

type DesignsHandler struct {
	repo DesignProvider
}

func NewDesignsHandler(r DesignProvider) *DesignsHandler {
	return &DesignsHandler{
		repo: r,
	}
}

type CreateDesignRequest struct {
	SessionID  string      `json:"sessionId"`
	ProductID  uint        `json:"productId"`
	DesignData models.JSON `json:"designData"`
}

func (req *CreateDesignRequest) ToDesign() (*models.CustomDesign, *models.ValidationError) {
	ve := &models.ValidationError{}

	if strings.TrimSpace(req.SessionID) == "" {
		ve.Add("sessionId", "Session ID is required")
	}
	if req.ProductID == 0 {
		ve.Add("productId", "Product ID is required")
	}
	if len(req.DesignData) == 0 || string(req.DesignData) == "null" {
		ve.Add("designData", "Design data is required")
	}
	if ve.Err() != nil {
		return nil, ve
	}

	return &models.CustomDesign{
		SessionID:  req.SessionID,
		ProductID:  req.ProductID,
		DesignData: req.DesignData,
	}, nil
}

func (h *DesignsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateDesignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	design, ve := req.ToDesign()
	if ve != nil {
		response.ValidationFailed(w, ve)
		return
	}

	if err := h.repo.CreateCustomDesign(design); err != nil {
		log.Printf("Error creating custom design: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to create design")
		return
	}
	response.JSON(w, http.StatusCreated, design)
}

func (h *DesignsHandler) HandleGetBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")

	designs, err := h.repo.GetCustomDesignsBySession(sessionID)
	if err != nil {
		log.Printf("Error fetching custom designs: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch designs")
		return
	}
	if designs == nil {
		designs = []models.CustomDesign{}
	}
	response.JSON(w, http.StatusOK, designs)
}
