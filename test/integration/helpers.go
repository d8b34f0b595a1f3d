//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

const (
	testClientID     = "integration-client"
	testClientSecret = "integration-secret"
	testAccessToken  = "integration-access-token"
)

// fakeAPI is an in-memory Pluvo API used to exercise complete client
// workflows without a real deployment.
type fakeAPI struct {
	mu            sync.Mutex
	courses       map[int]*pluvo.Course
	users         map[int]*pluvo.User
	organisations map[int]*pluvo.Organisation
	nextID        int
	tokenRequests int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		courses:       make(map[int]*pluvo.Course),
		users:         make(map[int]*pluvo.User),
		organisations: make(map[int]*pluvo.Organisation),
		nextID:        1,
	}
}

// Start returns an httptest server speaking the Pluvo wire protocol.
func (api *fakeAPI) Start() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/oauth/token", api.handleOAuthToken)
	mux.HandleFunc("/version/", api.withAuth(api.handleVersion))
	mux.HandleFunc("/course/", api.withAuth(api.handleCourses))
	mux.HandleFunc("/user/", api.withAuth(api.handleUsers))
	mux.HandleFunc("/organisation/", api.withAuth(api.handleOrganisations))
	mux.HandleFunc("/media/s3_upload_token/", api.withAuth(api.handleUploadToken))

	return httptest.NewServer(mux)
}

func (api *fakeAPI) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testAccessToken {
			writeJSON(w, http.StatusForbidden, map[string]string{
				"message": "Missing token or client_id and client_secret missing in headers.",
			})

			return
		}

		next(w, r)
	}
}

func (api *fakeAPI) handleOAuthToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})

		return
	}

	user, pass, ok := r.BasicAuth()
	if !ok || user != testClientID || pass != testClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "Client authentication failed",
		})

		return
	}

	api.mu.Lock()
	api.tokenRequests++
	api.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": testAccessToken,
		"token_type":   "bearer",
		"expires_in":   3600,
	})
}

func (api *fakeAPI) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pluvo.Version{Version: "1.0"})
}

func (api *fakeAPI) handleCourses(w http.ResponseWriter, r *http.Request) {
	id, hasID := trailingID(r.URL.Path, "/course/")

	api.mu.Lock()
	defer api.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && !hasID:
		items := make([]pluvo.Course, 0, len(api.courses))

		title := r.URL.Query().Get("title")
		for i := 1; i < api.nextID; i++ {
			course, ok := api.courses[i]
			if !ok {
				continue
			}

			if title != "" && !strings.Contains(course.Title, title) {
				continue
			}

			items = append(items, *course)
		}

		writePage(w, r, items)
	case r.Method == http.MethodGet:
		course, ok := api.courses[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Course not found."})

			return
		}

		writeJSON(w, http.StatusOK, course)
	case r.Method == http.MethodPost:
		var course pluvo.Course
		decodeBody(r, &course)

		course.ID = api.nextID
		api.nextID++

		now := time.Now().UTC()
		course.CreationDate = &now
		api.courses[course.ID] = &course

		writeJSON(w, http.StatusOK, course)
	case r.Method == http.MethodPut:
		existing, ok := api.courses[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Course not found."})

			return
		}

		var course pluvo.Course
		decodeBody(r, &course)

		course.ID = id
		course.CreationDate = existing.CreationDate
		api.courses[id] = &course

		writeJSON(w, http.StatusOK, course)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (api *fakeAPI) handleUsers(w http.ResponseWriter, r *http.Request) {
	// Course token paths look like /user/{id}/course/{id}/token/{type}/
	if strings.Contains(r.URL.Path, "/course/") {
		api.handleCourseToken(w, r)

		return
	}

	id, hasID := trailingID(r.URL.Path, "/user/")

	api.mu.Lock()
	defer api.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && !hasID:
		items := make([]pluvo.User, 0, len(api.users))
		for i := 1; i < api.nextID; i++ {
			if user, ok := api.users[i]; ok {
				items = append(items, *user)
			}
		}

		writePage(w, r, items)
	case r.Method == http.MethodGet:
		user, ok := api.users[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found."})

			return
		}

		writeJSON(w, http.StatusOK, user)
	case r.Method == http.MethodPost:
		var user pluvo.User
		decodeBody(r, &user)

		user.ID = api.nextID
		api.nextID++
		api.users[user.ID] = &user

		writeJSON(w, http.StatusOK, user)
	case r.Method == http.MethodPut:
		if _, ok := api.users[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found."})

			return
		}

		var user pluvo.User
		decodeBody(r, &user)

		user.ID = id
		api.users[id] = &user

		writeJSON(w, http.StatusOK, user)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (api *fakeAPI) handleCourseToken(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 6 || parts[4] != "token" {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	tokenType := parts[5]
	writeJSON(w, http.StatusOK, pluvo.CourseToken{
		Token: fmt.Sprintf("course-token-%s-%s-%s", parts[1], parts[3], tokenType),
		Type:  pluvo.TokenType(tokenType),
	})
}

func (api *fakeAPI) handleOrganisations(w http.ResponseWriter, r *http.Request) {
	id, hasID := trailingID(r.URL.Path, "/organisation/")

	api.mu.Lock()
	defer api.mu.Unlock()

	switch {
	case r.Method == http.MethodPost:
		var organisation pluvo.Organisation
		decodeBody(r, &organisation)

		organisation.ID = api.nextID
		api.nextID++
		api.organisations[organisation.ID] = &organisation

		writeJSON(w, http.StatusOK, organisation)
	case r.Method == http.MethodPut && hasID:
		var organisation pluvo.Organisation
		decodeBody(r, &organisation)

		organisation.ID = id
		api.organisations[id] = &organisation

		writeJSON(w, http.StatusOK, organisation)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (api *fakeAPI) handleUploadToken(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	writeJSON(w, http.StatusOK, pluvo.S3UploadToken{
		Token: "upload-token-" + filename,
		URL:   "https://uploads.example.com/" + filename,
	})
}

// trailingID extracts a numeric id from paths like /course/42/.
func trailingID(path, prefix string) (int, bool) {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return 0, false
	}

	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}

	return id, true
}

// writePage applies limit/offset and writes a listing page.
func writePage[T any](w http.ResponseWriter, r *http.Request, items []T) {
	count := len(items)

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset > count {
		offset = count
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || offset+limit > count {
		limit = count - offset
	}

	writeJSON(w, http.StatusOK, pluvo.Page[T]{
		Count: count,
		Data:  items[offset : offset+limit],
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(r *http.Request, v interface{}) {
	_ = json.NewDecoder(r.Body).Decode(v)
}
