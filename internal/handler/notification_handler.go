package handlers

import (
	"net/http"

	"storroz/internal/models"
)

func (h *Handlers) GetNotifications(w http.ResponseWriter, r *http.Request) {
	// the receiver is the authenticated user
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	notifications, err := h.NotificationRepo.GetByReceiverID(r.Context(), userID)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	WriteSuccess(w, map[string]interface{}{"notifications": notifications}, http.StatusOK)
}

func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	notificationID, err := pathID(r, "notification_id")
	if err != nil {
		WriteError(w, "Неверный ID уведомления", http.StatusBadRequest)
		return
	}

	// a foreign notification surfaces as not found
	if err := h.NotificationRepo.MarkRead(r.Context(), notificationID, userID); err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Уведомление прочитано"}, http.StatusOK)
}
