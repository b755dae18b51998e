package testinternals

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
)

// WgerServer is an in-process stand-in for the wger api, serving the four
// collections the explorer reads. Records are raw JSON-ish maps so tests can
// shape them like the real service does, odd fields included.
type WgerServer struct {
	Server *httptest.Server

	mu         sync.Mutex
	Categories []map[string]any
	Languages  []map[string]any
	Exercises  []map[string]any
	// MainImages maps exercise id to the url of its main image.
	MainImages map[int]string
	// FailPaths holds the status code to answer with, per collection path.
	FailPaths map[string]int

	requests   sync.Map // path -> *atomic.Int64
	lastQuery  sync.Map // path -> url.Values encoded
	totalCalls atomic.Int64
}

func NewWgerServer() *WgerServer {
	ws := &WgerServer{
		Categories: []map[string]any{
			{"id": 10, "name": "Abs"},
			{"id": 8, "name": "Arms"},
			{"id": 9, "name": "Legs"},
		},
		Languages: []map[string]any{
			{"id": 1, "short_name": "de", "full_name": "Deutsch", "full_name_en": "German"},
			{"id": 2, "short_name": "en", "full_name": "English", "full_name_en": "English"},
			{"id": 3, "short_name": "bg", "full_name": "български език"},
		},
		Exercises: []map[string]any{
			{
				"id":       31,
				"name":     "Crunches",
				"category": map[string]any{"id": 10, "name": "Abs"},
				"translations": []map[string]any{
					{"language": 2, "name": "Crunches", "description": "<p>Lie down</p>"},
				},
				"images": []map[string]any{},
			},
			{
				"id":       32,
				"category": 9,
				"translations": []map[string]any{
					{"language": 1, "name": "Kniebeuge", "description": "<p>Tief</p>"},
					{"language": 2, "name": "Squat", "description": "<p>Go low</p>"},
				},
				"images": []map[string]any{
					{"image": "https://wger.de/media/squat-side.png", "is_main": false},
				},
			},
			{
				"id":       33,
				"name":     "Curl",
				"category": map[string]any{"id": 8, "name": "Arms"},
			},
		},
		MainImages: map[int]string{
			31: "https://wger.de/media/crunches.png",
		},
		FailPaths: map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/exercisecategory/", ws.handle(func(*http.Request) any { return ws.Categories }))
	mux.HandleFunc("/language/", ws.handle(func(*http.Request) any { return ws.Languages }))
	mux.HandleFunc("/exerciseinfo/", ws.handle(ws.filterExercises))
	mux.HandleFunc("/exerciseimage/", ws.handle(ws.mainImage))
	ws.Server = httptest.NewServer(mux)

	return ws
}

func (ws *WgerServer) URL() string {
	return ws.Server.URL
}

func (ws *WgerServer) Close() {
	ws.Server.Close()
}

// Fail makes the given collection path (e.g. "/language/") answer with status.
// Status 0 clears the failure.
func (ws *WgerServer) Fail(path string, status int) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if status == 0 {
		delete(ws.FailPaths, path)
		return
	}
	ws.FailPaths[path] = status
}

// Requests returns how many times the collection path was called.
func (ws *WgerServer) Requests(path string) int {
	v, ok := ws.requests.Load(path)
	if !ok {
		return 0
	}
	return int(v.(*atomic.Int64).Load())
}

func (ws *WgerServer) TotalRequests() int {
	return int(ws.totalCalls.Load())
}

// LastQuery returns the raw query string of the last call to the collection path.
func (ws *WgerServer) LastQuery(path string) string {
	v, ok := ws.lastQuery.Load(path)
	if !ok {
		return ""
	}
	return v.(string)
}

func (ws *WgerServer) handle(results func(r *http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counter, _ := ws.requests.LoadOrStore(r.URL.Path, &atomic.Int64{})
		counter.(*atomic.Int64).Add(1)
		ws.totalCalls.Add(1)
		ws.lastQuery.Store(r.URL.Path, r.URL.RawQuery)

		ws.mu.Lock()
		status, fail := ws.FailPaths[r.URL.Path]
		ws.mu.Unlock()
		if fail {
			http.Error(w, "failing on purpose", status)
			return
		}

		ws.mu.Lock()
		res := results(r)
		ws.mu.Unlock()

		respBytes, err := json.Marshal(res)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"count": %d, "next": null, "previous": null, "results": %s}`, countOf(res), respBytes)
	}
}

func (ws *WgerServer) filterExercises(r *http.Request) any {
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("category"))

	results := make([]map[string]any, 0, len(ws.Exercises))
	for _, e := range ws.Exercises {
		if categoryID > 0 && exerciseCategoryID(e) != categoryID {
			continue
		}
		results = append(results, e)
	}

	return results
}

func (ws *WgerServer) mainImage(r *http.Request) any {
	exerciseID, _ := strconv.Atoi(r.URL.Query().Get("exercise"))
	imageUrl, ok := ws.MainImages[exerciseID]
	if !ok {
		return []map[string]any{}
	}
	return []map[string]any{
		{"id": exerciseID * 100, "exercise": exerciseID, "image": imageUrl, "is_main": true},
	}
}

func exerciseCategoryID(e map[string]any) int {
	switch c := e["category"].(type) {
	case int:
		return c
	case map[string]any:
		id, _ := c["id"].(int)
		return id
	default:
		return 0
	}
}

func countOf(res any) int {
	if list, ok := res.([]map[string]any); ok {
		return len(list)
	}
	return 0
}
