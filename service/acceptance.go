package service

import (
	"net/http"
	"os"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance describes the public behaviour of the API. dataFile is the file
// the server has been configured to serve from /top-schemes.
func Acceptance(a *biff.A, dataFile string, apiRequest func(method, path string) *apitest.Request) {

	writeDataFile := func(lines ...string) {
		err := os.WriteFile(dataFile, []byte(strings.Join(lines, "\n")), 0666)
		biff.AssertNil(err)
	}

	a.Alternative("Missing file", func(a *biff.A) {
		resp := apiRequest("GET", "/top-schemes").Do()
		Save(resp, "Top schemes - missing file", `
			When the schemes file does not exist the endpoint still answers with
			200 and a single error item.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.Header.Get("Content-Type"), "application/json")
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{"error": "CSV file not found"},
		})
	})

	a.Alternative("Schemes file", func(a *biff.A) {
		writeDataFile(
			"scheme_code,scheme_name,category,nav,expense_ratio",
			"120828,Quant Small Cap Fund,Small Cap,245.67,0.77",
			"119775,Motilal Oswal Midcap Fund,Mid Cap,98.12,",
			"122639,Parag Parikh Flexi Cap,Flexi Cap,78.25,0.63",
		)

		resp := apiRequest("GET", "/top-schemes").Do()
		Save(resp, "Top schemes", `
			Returns the first rows of the schemes file. Missing values are
			returned as empty strings.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{
				"scheme_code":   120828,
				"scheme_name":   "Quant Small Cap Fund",
				"category":      "Small Cap",
				"nav":           245.67,
				"expense_ratio": 0.77,
			},
			{
				"scheme_code":   119775,
				"scheme_name":   "Motilal Oswal Midcap Fund",
				"category":      "Mid Cap",
				"nav":           98.12,
				"expense_ratio": "",
			},
			{
				"scheme_code":   122639,
				"scheme_name":   "Parag Parikh Flexi Cap",
				"category":      "Flexi Cap",
				"nav":           78.25,
				"expense_ratio": 0.63,
			},
		})

		a.Alternative("Keep header order", func(a *biff.A) {
			resp := apiRequest("GET", "/top-schemes").Do()
			body := resp.BodyString()

			biff.AssertTrue(strings.HasPrefix(body, `[{"scheme_code":120828,"scheme_name":"Quant Small Cap Fund"`))
		})

		a.Alternative("File changes between requests", func(a *biff.A) {
			writeDataFile(
				"scheme_code,scheme_name",
				"118778,Nippon India Large Cap",
			)

			resp := apiRequest("GET", "/top-schemes").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{
				{"scheme_code": 118778, "scheme_name": "Nippon India Large Cap"},
			})
		})
	})

	a.Alternative("Malformed file", func(a *biff.A) {
		writeDataFile(
			"scheme_code,scheme_name",
			"120828,Quant Small Cap Fund",
			"119063,Nippon India Small Cap,unexpected",
		)

		resp := apiRequest("GET", "/top-schemes").Do()
		Save(resp, "Top schemes - malformed file", `
			Parse errors are reported inside the body, status is still 200.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{"error": "Error tokenizing data. Expected 2 fields in line 3, saw 3"},
		})
	})

	a.Alternative("Empty file", func(a *biff.A) {
		writeDataFile("")

		resp := apiRequest("GET", "/top-schemes").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{"error": "No columns to parse from file"},
		})
	})

	a.Alternative("Header only", func(a *biff.A) {
		writeDataFile("scheme_code,scheme_name")

		resp := apiRequest("GET", "/top-schemes").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(strings.TrimSpace(resp.BodyString()), "[]")
	})

	a.Alternative("Unknown endpoint", func(a *biff.A) {
		resp := apiRequest("GET", "/bottom-schemes").Do()
		Save(resp, "Unknown endpoint", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "not found",
				"description": "resource '/bottom-schemes' not found",
			},
		})
	})

	a.Alternative("Method not allowed", func(a *biff.A) {
		resp := apiRequest("POST", "/top-schemes").Do()
		Save(resp, "Top schemes - method not allowed", `
			Only GET is served, other methods get a 405.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusMethodNotAllowed)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "method_not_allowed",
				"description": "method 'POST' not allowed",
			},
		})
	})
}
