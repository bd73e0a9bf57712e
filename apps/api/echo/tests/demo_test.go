package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doodhq/dood/core/demo"
	testutil "github.com/doodhq/dood/tests"
)

func Test_demoApi_status(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/demos")
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK, wantData: marchallObj(t, echo.Map{"enabled": false}),
	}, rec)

	// the panels light up once a material lands
	testutil.CreateMaterial(t, app.materialRepo, "biology-notes.pdf", 120_000)

	req, rec = newRequest(http.MethodGet, "/v1/demos")
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK, wantData: marchallObj(t, echo.Map{"enabled": true}),
	}, rec)
}

func Test_demoApi_content(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{name: "Quiz", path: "/v1/demos/quiz", wantCode: http.StatusOK, wantData: marchallObj(t, demo.SampleQuiz)},
		{
			name: "Exam", path: "/v1/demos/exam", wantCode: http.StatusOK,
			wantData: marchallObj(t, echo.Map{
				"questions":        demo.SampleExam,
				"duration_seconds": int(demo.ExamDuration / time.Second),
				"warning_seconds":  int(demo.ExamWarningThreshold / time.Second),
			}),
		},
		{
			name: "Flashcards", path: "/v1/demos/flashcards", wantCode: http.StatusOK,
			wantData: marchallObj(t, echo.Map{"deck": demo.SampleDeck, "panel_cards": demo.SamplePanelCards}),
		},
		{name: "Chat", path: "/v1/demos/chat", wantCode: http.StatusOK, wantData: marchallObj(t, demo.SampleChat)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_demoApi_scoreQuiz(t *testing.T) {
	app := setup(t)

	one, zero := 1, 0
	tests := []httpTest{
		{
			name: "Partial sheet", body: marchallObj(t, echo.Map{"answers": []*int{&one, nil, &zero}}),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, demo.QuizScore{Correct: 2, Total: 3, Percentage: 67}),
		},
		{
			name: "Empty sheet", body: marchallObj(t, echo.Map{"answers": []*int{}}),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, demo.QuizScore{Correct: 0, Total: 3, Percentage: 0}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/demos/quiz/score", tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_demoApi_scoreExam(t *testing.T) {
	app := setup(t)

	one, two := 1, 2
	// q2 (15pts) and q3 (15pts) right, the rest blank
	body := marchallObj(t, echo.Map{"answers": []*int{nil, &one, &two}})

	req, rec := newRequest(http.MethodPost, "/v1/demos/exam/score", body)
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, demo.ExamScore{TotalScore: 30, MaxScore: 70, Percentage: 43}),
	}, rec)
}
