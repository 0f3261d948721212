package unit

import (
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/tests/helpers"
)

// TestApplicantSignupFlow tests the public signup and the admin listing
func TestApplicantSignupFlow(t *testing.T) {
	app, db := setupApp(t)
	helpers.CreateTestUser(t, db, "admin", "Password1", models.RoleAdmin)
	course := helpers.CreateTestCourse(t, db, 2)

	image := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	payload := map[string]interface{}{
		"first_name": "Maria",
		"last_name":  "Lopez",
		"email":      "maria@test.com",
		"cellphone":  "720455",
		"image":      image,
		"course_id":  course.ID,
	}

	// Signup needs no token
	resp, err := app.Test(jsonRequest("POST", "/applicant/create/", "", payload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if detail := decodeDetail(t, resp); detail != "Solicitud registrada" {
		t.Errorf("Expected detail 'Solicitud registrada', got %q", detail)
	}

	// The listing is admin only
	req := httptest.NewRequest("GET", "/applicant/course/1/all/", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}

	token := login(t, app, "admin", "Password1")
	req = httptest.NewRequest("GET", "/applicant/course/1/all/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var applicants []struct {
		ID        uint   `json:"id"`
		FirstName string `json:"first_name"`
		Image     string `json:"image"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&applicants); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(applicants) != 1 {
		t.Fatalf("Expected 1 applicant, got %d", len(applicants))
	}
	if applicants[0].FirstName != "Maria" {
		t.Errorf("Expected decrypted first name, got %s", applicants[0].FirstName)
	}
	expectedLink := "http://localhost:3000/applicant/1/image"
	if applicants[0].Image != expectedLink {
		t.Errorf("Expected image link %s, got %s", expectedLink, applicants[0].Image)
	}
}

// TestApplicantRejectsBadImage tests the base64 and size validations
func TestApplicantRejectsBadImage(t *testing.T) {
	app, db := setupApp(t)
	course := helpers.CreateTestCourse(t, db, 2)

	payload := map[string]interface{}{
		"first_name": "Maria",
		"last_name":  "Lopez",
		"email":      "maria@test.com",
		"cellphone":  "720455",
		"image":      "%%%not-base64%%%",
		"course_id":  course.ID,
	}
	resp, err := app.Test(jsonRequest("POST", "/applicant/create/", "", payload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

// TestApplicantCapacityOverHTTP tests the 409 once the course fills up
func TestApplicantCapacityOverHTTP(t *testing.T) {
	app, db := setupApp(t)
	course := helpers.CreateTestCourse(t, db, 1)

	payload := map[string]interface{}{
		"first_name": "Maria",
		"last_name":  "Lopez",
		"email":      "maria@test.com",
		"cellphone":  "720455",
		"course_id":  course.ID,
	}
	resp, err := app.Test(jsonRequest("POST", "/applicant/create/", "", payload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest("POST", "/applicant/create/", "", payload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 409 {
		t.Errorf("Expected status 409, got %d", resp.StatusCode)
	}

	var envelope map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if envelope["message"] != "No hay más cupos" {
		t.Errorf("Expected capacity message, got %v", envelope["message"])
	}
}
