package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/tjper/spacex/internal/spacex"

	"github.com/99designs/gqlgen/graphql"
	"github.com/stretchr/testify/require"
)

func TestLaunchesList(t *testing.T) {
	t.Parallel()

	srv := newLaunchServer(t)
	out, err := execute(t, "launches", "list", "--api-url", srv.URL, "--page-size", "2")
	require.Nil(t, err)

	require.Contains(t, out, "Thaicom 6")
	require.Contains(t, out, "2014-01-06")
	require.Contains(t, out, "No mission name")
}

func TestLaunchesShow(t *testing.T) {
	t.Parallel()

	srv := newLaunchServer(t)
	out, err := execute(t,
		"launches", "show", "42", "7",
		"--api-url", srv.URL,
		"--prefs-path", filepath.Join(t.TempDir(), "prefs.db"),
	)
	require.Nil(t, err)

	require.Contains(t, out, "Launch 42")
	require.Contains(t, out, "Launch 7")
	require.Contains(t, out, "549,054 kg")
	require.Contains(t, out, "No description available.")
}

func TestLaunchesShowNotFound(t *testing.T) {
	t.Parallel()

	srv := newLaunchServer(t)
	_, err := execute(t,
		"launches", "show", "42", "missing",
		"--api-url", srv.URL,
		"--prefs-backend", "memory",
	)
	require.ErrorIs(t, err, spacex.ErrFetchDetails)
}

func TestSavedLifecycle(t *testing.T) {
	t.Parallel()

	srv := newLaunchServer(t)
	flags := []string{
		"--api-url", srv.URL,
		"--prefs-path", filepath.Join(t.TempDir(), "prefs.db"),
	}

	out, err := execute(t, append([]string{"saved", "list"}, flags...)...)
	require.Nil(t, err)
	require.Contains(t, out, "No saved launches.")

	out, err = execute(t, append([]string{"saved", "add", "42", "7"}, flags...)...)
	require.Nil(t, err)
	require.Contains(t, out, "Saved 42.")
	require.Contains(t, out, "Saved 7.")

	out, err = execute(t, append([]string{"saved", "list", "--markdown"}, flags...)...)
	require.Nil(t, err)
	require.Contains(t, out, "| 42 |")
	require.Contains(t, out, "| 7 |")

	out, err = execute(t, append([]string{"launches", "show", "42"}, flags...)...)
	require.Nil(t, err)
	require.Contains(t, out, "yes")

	out, err = execute(t, append([]string{"saved", "rm", "42"}, flags...)...)
	require.Nil(t, err)
	require.Contains(t, out, "Removed 42.")

	out, err = execute(t, append([]string{"saved", "list", "--markdown"}, flags...)...)
	require.Nil(t, err)
	require.NotContains(t, out, "| 42 |")
	require.Contains(t, out, "| 7 |")

	out, err = execute(t, append([]string{"saved", "clear"}, flags...)...)
	require.Nil(t, err)
	require.Contains(t, out, "Cleared saved launches.")

	out, err = execute(t, append([]string{"saved", "list"}, flags...)...)
	require.Nil(t, err)
	require.Contains(t, out, "No saved launches.")
}

func TestInterrupted(t *testing.T) {
	t.Parallel()

	srv := newLaunchServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"launches", "list", "--api-url", srv.URL})
	cmd.SetOut(new(bytes.Buffer))

	err := cmd.ExecuteContext(ctx)
	require.ErrorIs(t, err, spacex.ErrInterrupted)
}

// --- helpers ---

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// newLaunchServer starts a fake launch API. It lists launch "1" and a launch
// without a mission name, and details any id except "missing".
func newLaunchServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params graphql.RawParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var data interface{}
		switch params.OperationName {
		case "LaunchesPast":
			data = map[string]interface{}{
				"launchesPast": []interface{}{
					map[string]interface{}{
						"id":              "1",
						"mission_name":    "Thaicom 6",
						"launch_date_utc": "2014-01-06T22:06:00.000Z",
						"launch_site":     map[string]interface{}{"site_name_long": "CCAFS SLC 40"},
					},
					map[string]interface{}{"id": "2"},
				},
			}
		case "LaunchDetails":
			id, _ := params.Variables["id"].(string)
			if id == "missing" {
				data = map[string]interface{}{"launch": nil}
				break
			}
			data = map[string]interface{}{
				"launch": map[string]interface{}{
					"id":              id,
					"mission_name":    "Launch " + id,
					"launch_date_utc": "2020-10-24T15:31:00.000Z",
					"rocket": map[string]interface{}{
						"rocket_name": "Falcon 9",
						"rocket": map[string]interface{}{
							"mass": map[string]interface{}{"kg": 549054},
						},
					},
				},
			}
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
	}))
	t.Cleanup(srv.Close)

	return srv
}
