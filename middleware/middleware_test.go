package middleware

import (
	"net/http/httptest"
	"testing"

	"timetable/domain"

	"github.com/gofiber/fiber/v2"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin-only", AuthRequired(), AdminTierRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenFor(t *testing.T, role domain.Role) string {
	t.Helper()
	token, err := GenerateJWT(&domain.User{ID: 1, Username: "someone", Role: role})
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	return token
}

func TestAuthRequired(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-secret")
	app := testApp()

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{name: "No Token", token: "", status: fiber.StatusUnauthorized},
		{name: "Garbage Token", token: "not-a-jwt", status: fiber.StatusUnauthorized},
		{name: "Student Token", token: tokenFor(t, domain.RoleStudent), status: fiber.StatusForbidden},
		{name: "Teacher Token", token: tokenFor(t, domain.RoleTeacher), status: fiber.StatusForbidden},
		{name: "Admin Token", token: tokenFor(t, domain.RoleAdmin), status: fiber.StatusOK},
		{name: "Super Admin Token", token: tokenFor(t, domain.RoleSuperAdmin), status: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin-only", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test failed: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestVerifyJWTRoundTrip(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-secret")

	teacherID := 4
	token, err := GenerateJWT(&domain.User{
		ID:        20,
		Username:  "ivanenko",
		Role:      domain.RoleTeacher,
		TeacherID: &teacherID,
	})
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT failed: %v", err)
	}
	if claims.UserID != 20 || claims.Username != "ivanenko" || claims.Role != domain.RoleTeacher {
		t.Errorf("claims round trip mismatch: %+v", claims)
	}
	if claims.TeacherID == nil || *claims.TeacherID != teacherID {
		t.Error("teacher scope should survive the round trip")
	}
}

func TestVerifyJWTWrongKey(t *testing.T) {
	t.Setenv("BYTE_KEY", "first-secret")
	token := tokenFor(t, domain.RoleAdmin)

	t.Setenv("BYTE_KEY", "second-secret")
	if _, err := VerifyJWT(token); err == nil {
		t.Error("token signed with another key should not verify")
	}
}
