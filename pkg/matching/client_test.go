package matching_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStudentsSendsNormalizedPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"queries": {"field": "physics"}, "combined_results": [{"student_id": "s1", "user": "u1", "overall_match": 0.9}]}`))
	}))
	defer srv.Close()

	client := matching.NewClient(srv.URL)
	ageMax := 30.0
	resp, err := client.MatchStudents(context.Background(), &domain.MatchQuery{
		BelieverText: "physicists",
		Country:      []string{"Italy"},
		AgeMax:       &ageMax,
	})
	require.NoError(t, err)

	assert.Equal(t, "/match-students", gotPath)
	assert.Equal(t, "physicists", gotBody["believer_text"])
	assert.Equal(t, []any{"Italy"}, gotBody["country"])
	assert.Equal(t, 30.0, gotBody["age_max"])
	// Absent filters must travel as explicit nulls.
	val, present := gotBody["languages"]
	assert.True(t, present)
	assert.Nil(t, val)

	require.Len(t, resp.CombinedResults, 1)
	assert.Equal(t, "s1", resp.CombinedResults[0].StudentID)
	assert.Equal(t, "u1", resp.CombinedResults[0].User)
	require.NotNil(t, resp.CombinedResults[0].OverallMatch)
	assert.Equal(t, 0.9, *resp.CombinedResults[0].OverallMatch)
	assert.Equal(t, map[string]any{"field": "physics"}, resp.Queries)
}

func TestMatchStudentsSurfacesUpstreamBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("no embeddings"))
	}))
	defer srv.Close()

	client := matching.NewClient(srv.URL)
	_, err := client.MatchStudents(context.Background(), &domain.MatchQuery{BelieverText: "anyone"})
	require.Error(t, err)

	upstream, ok := err.(*matching.UpstreamError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
	assert.Equal(t, "no embeddings", upstream.Body)
	assert.Equal(t, "no embeddings", upstream.Error())
}

func TestMatchStudentsFailsOpenOnMalformedResults(t *testing.T) {
	cases := map[string]string{
		"absent":      `{"queries": {}}`,
		"wrong type":  `{"queries": {}, "combined_results": "oops"}`,
		"null":        `{"queries": null, "combined_results": null}`,
		"bad entries": `{"combined_results": [{"student_id": 42}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			}))
			defer srv.Close()

			client := matching.NewClient(srv.URL)
			resp, err := client.MatchStudents(context.Background(), &domain.MatchQuery{BelieverText: "anyone"})
			require.NoError(t, err)
			assert.Empty(t, resp.CombinedResults)
			assert.NotNil(t, resp.Queries)
		})
	}
}

func TestRegisterStudentPostsProfile(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := matching.NewClient(srv.URL)
	name := "Ada"
	err := client.RegisterStudent(context.Background(), &domain.StudentProfile{
		UserID:    "u1",
		Name:      &name,
		Languages: []string{"English"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/students", gotPath)
	assert.Equal(t, "u1", gotBody["user_id"])
	assert.Equal(t, "Ada", gotBody["name"])
}
