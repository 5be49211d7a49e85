package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/fulldump/apitest"
)

// Save renders a request/response pair as a markdown API example. Files are
// only written when API_EXAMPLES_PATH is set.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}

	s := &strings.Builder{}

	fmt.Fprintf(s, "# %s\n", title)
	fmt.Fprintf(s, "%s\n", cropTabs(description))

	s.WriteString("Curl example:\n\n```sh\n")
	method := ""
	if request.Method != "GET" {
		method = "-X " + request.Method + " "
	}
	fmt.Fprintf(s, "curl %s\"https://example.com%s%s\"\n", method, request.URL.Path, query)
	s.WriteString("```\n\n\n")

	s.WriteString("HTTP request/response example:\n\n```http\n")
	fmt.Fprintf(s, "%s %s%s %s\n", request.Method, request.URL.Path, query, request.Proto)
	s.WriteString("Host: example.com\n\n")

	fmt.Fprintf(s, "%s %s\n", response.Proto, response.Status)
	headerKeys := []string{}
	for k := range response.Header {
		headerKeys = append(headerKeys, k)
	}
	sort.Strings(headerKeys)
	for _, k := range headerKeys {
		switch k {
		case "Date":
			s.WriteString("Date: Mon, 15 Aug 2022 02:08:13 GMT\n")
		case "X-Request-Id":
			s.WriteString("X-Request-Id: 1f0e5a39-0d5b-4bd2-a2b5-6b1f0b7e3c11\n")
		default:
			for _, v := range response.Header[k] {
				fmt.Fprintf(s, "%s: %s\n", k, v)
			}
		}
	}
	s.WriteString("\n")
	s.WriteString(formatJSON(response.BodyString()) + "\n")
	s.WriteString("```\n\n\n")

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".md"
	p := path.Join(examplesPath, path.Clean(filename))
	fmt.Println("Saving", p)
	err := os.WriteFile(p, []byte(s.String()), 0666)
	if err != nil {
		fmt.Println("Saving err:", err)
	}
}

func formatJSON(body string) string {

	var i interface{}
	err := json.Unmarshal([]byte(body), &i)
	if err != nil {
		return body
	}

	b, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return body
	}

	return string(b)
}

// cropTabs removes the common indentation of a multiline description.
func cropTabs(d string) string {

	lines := strings.Split(d, "\n")

	minTabs := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, "\t"))
		if minTabs < 0 || n < minTabs {
			minTabs = n
		}
	}

	prefix := strings.Repeat("\t", max(minTabs, 0))
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
