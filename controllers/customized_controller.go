package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"tourism-api/configs"
	"tourism-api/models"
	"tourism-api/utils"
)

const (
	notificationSent   = "sent"
	notificationFailed = "failed"
)

// AddCustomRequest handles the public custom tour form. The request is
// recorded first; the staff notification is attempted afterwards and its
// outcome is reported in a separate field, never as an HTTP failure.
func AddCustomRequest(store CustomizedStore, mailer utils.Mailer) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		var req models.CustomTourRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		req.ApplyDefaults()
		if err := req.Validate(); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		if err := store.Insert(ctx, &req); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		notification := notificationSent
		subject, body := utils.StaffNewRequestEmail(&req)
		if err := mailer.Send(configs.EnvAdminEmail(), subject, body); err != nil {
			notification = notificationFailed
			configs.LogWithContext("customized", "staff-notification").
				WithError(err).
				WithField("request_id", req.ID.Hex()).
				Error("Failed to send staff notification email")
		}

		writeEnvelope(rw, http.StatusCreated, "success", map[string]interface{}{
			"data":         req,
			"notification": notification,
		})
	}
}

// GetCustomRequests returns all requests, newest first. limit/skip query
// parameters bound the result when the admin dashboard asks for a page.
func GetCustomRequests(store CustomizedStore) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		limit, skip := parseListRange(r)
		requests, err := store.FindAll(ctx, limit, skip)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if requests == nil {
			requests = []models.CustomTourRequest{}
		}

		writeJSON(rw, http.StatusOK, requests)
	}
}

func GetCustomRequestByID(store CustomizedStore) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		id := mux.Vars(r)["id"]
		req, err := store.FindByID(ctx, id)
		if errors.Is(err, models.ErrRequestNotFound) {
			notFoundResponse(rw, "custom tour request not found")
			return
		}
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		writeJSON(rw, http.StatusOK, req)
	}
}

// UpdateCustomRequest applies a partial update. There are no transition
// guards between statuses. When the incoming payload carries the literal
// "Approved" status the customer confirmation email is attempted once; its
// failure is logged and does not affect the response.
func UpdateCustomRequest(store CustomizedStore, mailer utils.Mailer) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		id := mux.Vars(r)["id"]

		var upd models.CustomTourRequestUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		updated, err := store.Update(ctx, id, &upd)
		if errors.Is(err, models.ErrRequestNotFound) {
			notFoundResponse(rw, "custom tour request not found")
			return
		}
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		notification := ""
		if upd.IsApproval() {
			notification = notificationSent
			subject, body := utils.CustomerApprovalEmail(updated)
			if err := mailer.Send(updated.Customer.Email, subject, body); err != nil {
				notification = notificationFailed
				configs.LogWithContext("customized", "approval-notification").
					WithError(err).
					WithField("request_id", updated.ID.Hex()).
					Error("Failed to send customer approval email")
			}
		}

		data := map[string]interface{}{"data": updated}
		if notification != "" {
			data["notification"] = notification
		}
		writeEnvelope(rw, http.StatusOK, "success", data)
	}
}

// DeleteCustomRequest removes the document unconditionally and reports
// success even when nothing matched.
func DeleteCustomRequest(store CustomizedStore) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		id := mux.Vars(r)["id"]
		deleted, err := store.Delete(ctx, id)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if deleted == 0 {
			configs.LogWithContext("customized", "delete").
				WithField("request_id", id).
				Debug("Delete matched no document")
		}

		successResponse(rw, "custom tour request deleted")
	}
}
