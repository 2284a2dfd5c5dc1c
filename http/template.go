package http

import (
	"html/template"

	"github.com/fwojciec/seogenie"
)

// pageData is the view model for the index template.
type pageData struct {
	SiteURL        string
	CompetitorURL  string
	Report         *seogenie.Report
	ComparisonText string
}

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"percent": func(score int) int {
		return score * 100 / seogenie.MaxScore
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SEO Genie</title>
<style>
  body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
  form { display: flex; gap: 1rem; align-items: flex-end; flex-wrap: wrap; }
  label { display: flex; flex-direction: column; font-weight: bold; }
  input[type=text] { padding: 0.4rem; min-width: 18rem; }
  button { padding: 0.5rem 1.5rem; }
  .site { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin: 1rem 0; }
  .meter { background: #eee; border-radius: 4px; height: 1rem; overflow: hidden; }
  .meter > div { background: #2ca02c; height: 100%; }
  .warning { background: #fff3cd; border: 1px solid #ffe69c; padding: 0.5rem 1rem; border-radius: 4px; margin: 0.5rem 0; }
  .advice { background: #e7f1ff; padding: 0.5rem 1rem; border-radius: 4px; white-space: pre-wrap; }
  .summary { font-size: 1.2rem; font-weight: bold; margin: 1rem 0; }
  img.cloud { max-width: 100%; }
  table { border-collapse: collapse; }
  td, th { padding: 0.2rem 0.8rem; text-align: left; border-bottom: 1px solid #eee; }
</style>
</head>
<body>
<h1>&#128302; SEO Genie</h1>
<p>Enter two websites below for an on-page SEO check and see how they compare.</p>
<form method="post" action="/analyze">
  <label>Your Website URL
    <input type="text" name="site" value="{{.SiteURL}}">
  </label>
  <label>Competitor Website URL (optional)
    <input type="text" name="competitor" value="{{.CompetitorURL}}">
  </label>
  <button type="submit">Analyze</button>
</form>

{{with .Report}}
  {{range .Warnings}}<div class="warning">{{.}}</div>{{end}}

  {{with .Site}}
  <div class="site">
    <h2>Your Site Analysis</h2>
    {{template "analysis" .}}
  </div>
  {{end}}

  {{with .Competitor}}
  <div class="site">
    <h2>Competitor Site Analysis</h2>
    {{template "analysis" .}}
  </div>
  {{end}}
{{end}}

{{if .ComparisonText}}
  <h2>&#127881; Comparison Summary</h2>
  <p class="summary">{{.ComparisonText}}</p>
{{end}}

<hr>
<p><b>Pro Tip</b>: Fine-tune your content, meta tags, headings, and keep an eye on
competitor strategies.</p>
</body>
</html>

{{define "analysis"}}
  {{range .Warnings}}<div class="warning">{{.}}</div>{{end}}
  <p><b>Title:</b> {{.Page.Title}}</p>
  <p><b>Meta Description:</b> {{.Page.MetaDescription}}</p>
  <p><b>H1 Tags:</b> {{range .Page.Headings.h1}}{{.}} {{end}}</p>
  <p><b>SEO Health Score:</b> {{.Score}} / 60</p>
  <div class="meter"><div style="width: {{percent .Score}}%"></div></div>
  {{if .CloudID}}
  <h3>Keyword Density</h3>
  <img class="cloud" src="/wordcloud/{{.CloudID}}.png" alt="keyword cloud">
  {{end}}
  {{if .Keywords}}
  <h3>Top Keywords</h3>
  <table>
    <tr><th>Keyword</th><th>Count</th></tr>
    {{range .Keywords}}<tr><td>{{.Term}}</td><td>{{.Count}}</td></tr>{{end}}
  </table>
  {{end}}
  <h3>SEO Genie&#8217;s Recommendations</h3>
  <div class="advice">{{.Advice}}</div>
{{end}}
`
