package contact

import (
	"encoding/json"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/trynex/lifestyle-backend/models"
	"github.com/trynex/lifestyle-backend/pkg/response"
)

type ContactProvider interface {
	CreateContactMessage(message *models.ContactMessage) error
	GetContactMessages() ([]models.ContactMessage, error)
}

type ContactHandler struct {
	repo ContactProvider
}

func NewContactHandler(r ContactProvider) *ContactHandler {
	return &ContactHandler{
		repo: r,
	}
}

type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (req *CreateMessageRequest) ToMessage() (*models.ContactMessage, *models.ValidationError) {
	ve := &models.ValidationError{}

	if strings.TrimSpace(req.Name) == "" {
		ve.Add("name", "Name is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		ve.Add("email", "Valid email is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		ve.Add("message", "Message is required")
	}
	if ve.Err() != nil {
		return nil, ve
	}

	return &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}, nil
}

func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	message, ve := req.ToMessage()
	if ve != nil {
		response.ValidationFailed(w, ve)
		return
	}

	if err := h.repo.CreateContactMessage(message); err != nil {
		log.Printf("Error creating contact message: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to send message")
		return
	}
	response.JSON(w, http.StatusCreated, message)
}

func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.repo.GetContactMessages()
	if err != nil {
		log.Printf("Error fetching contact messages: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	response.JSON(w, http.StatusOK, messages)
}
