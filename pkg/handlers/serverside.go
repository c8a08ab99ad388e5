package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/spencer-p/lowtides/pkg/report"
	"github.com/spencer-p/lowtides/pkg/visualize"
)

const indexTemplateText = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Daylight low tides</title></head>
<body>
{{range .PresentationElements}}
<h2>{{.Date}}</h2>
{{range .Locations}}
<h3>{{.Name}}</h3>
{{.DayStrip}}
<ul>{{range .LowTides}}<li>{{.}}</li>{{else}}<li>No low tides in daylight.</li>{{end}}</ul>
{{end}}
{{end}}
{{if .Unavailable}}
<h2>Unavailable</h2>
<ul>{{range .Unavailable}}<li>{{.}}</li>{{end}}</ul>
{{end}}
</body>
</html>
`

var indexTemplate = template.Must(template.New("index").Parse(indexTemplateText))

type TemplateInput struct {
	PresentationElements []PresentationElement
	Unavailable          []string
}

// PresentationElement is one date heading and the locations listed under it.
type PresentationElement struct {
	Date      string
	Locations []LocationElement
}

type LocationElement struct {
	Name     string
	LowTides []string
	DayStrip template.HTML
}

// makeServerSideIndex serves the report as a page rendered on the server.
func (s *server) makeServerSideIndex() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tinput := templateInput(s.reports(r.Context()))

		w.Header().Add("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		if err := indexTemplate.Execute(w, tinput); err != nil {
			log.Printf("Failed to execute template: %v", err)
		}
	})
}

func templateInput(reports []report.Report) TemplateInput {
	groups, failed := report.GroupByDate(reports)

	var tinput TemplateInput
	for _, g := range groups {
		elem := PresentationElement{Date: g.Date}
		for _, r := range g.Reports {
			loc := LocationElement{
				Name:     r.Location.Name,
				DayStrip: template.HTML(stripToString(r)),
			}
			for _, lt := range r.Result.LowTides {
				loc.LowTides = append(loc.LowTides, report.LowTideString(lt))
			}
			elem.Locations = append(elem.Locations, loc)
		}
		tinput.PresentationElements = append(tinput.PresentationElements, elem)
	}
	for _, r := range failed {
		tinput.Unavailable = append(tinput.Unavailable, r.Location.Name)
	}
	return tinput
}

func stripToString(r report.Report) string {
	var b bytes.Buffer
	if _, err := visualize.NewDayStrip(r.Location.Name, r.Result).Encode(&b); err != nil {
		log.Printf("Failed to draw %s: %v", r.Location.Name, err)
		return ""
	}
	return b.String()
}
