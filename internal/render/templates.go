package render

import "html/template"

var pageTemplates = template.Must(template.New("atividade").Parse(`
{{define "document"}}<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
* { box-sizing: border-box; }
body { margin: 0; padding: 0; background: #fff; font-family: 'Segoe UI', Arial, sans-serif; color: #1e293b; }
.page { width: 210mm; height: 297mm; padding: 10mm; overflow: hidden; display: flex; flex-direction: column; background: #fff; page-break-after: always; }
.page header { text-align: center; border-bottom: 1px solid #e2e8f0; padding-bottom: 3mm; margin-bottom: 6mm; }
.page header h1 { font-size: 16pt; color: #075985; margin: 0 0 1mm 0; }
.page header p { font-size: 9pt; color: #64748b; margin: 0; }
.page main { flex: 1 1 auto; }
.page footer { margin-top: auto; padding-top: 4mm; border-top: 1px solid #e2e8f0; text-align: center; font-size: 8pt; color: #64748b; }
.section { border: 1px dashed #cbd5e1; border-radius: 2mm; padding: 4mm; margin-bottom: 5mm; }
.section h2 { font-size: 12pt; color: #0369a1; margin: 0 0 2mm 0; }
.section p { font-size: 10.5pt; line-height: 1.5; margin: 0 0 2mm 0; }
.question { margin-bottom: 4mm; padding-bottom: 2mm; border-bottom: 1px solid #e2e8f0; }
.question:last-child { border-bottom: none; }
.question p { font-weight: 500; margin-bottom: 1.5mm; }
.answer-line { border-bottom: 1px solid #94a3b8; height: 7mm; }
.choices { list-style: none; margin: 1.5mm 0 0 0; padding-left: 4mm; }
.choices li { font-size: 10.5pt; margin-bottom: 1mm; }
.items { margin: 2mm 0 0 0; padding-left: 8mm; }
.items li { font-size: 10.5pt; margin-bottom: 1mm; }
.illustration { display: block; margin: 3mm auto; max-width: 100%; max-height: 110mm; width: auto; height: auto; object-fit: contain; border: 1px solid #e2e8f0; border-radius: 1mm; }
.illustration.cut-line { border: 1px dashed #94a3b8; }
.image-text-row { display: flex; gap: 4mm; margin-bottom: 3mm; }
.image-text-row .img-col { flex: 0 0 40%; }
.image-text-row .img-col .illustration { margin: 0; }
.image-text-row .text-col { flex: 1 1 auto; }
.word-search { border-collapse: collapse; margin: 3mm auto; }
.word-search td { border: 1px solid #cbd5e1; width: 6mm; height: 6mm; text-align: center; font-family: 'Courier New', monospace; font-size: 10pt; text-transform: uppercase; }
.word-list h3 { font-size: 10pt; margin: 2mm 0 1mm 0; }
.grid-missing { color: #dc2626; font-size: 10pt; }
.centered { text-align: center; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>{{end}}

{{define "page"}}<div class="page">
<header>
{{if .PageTitle}}<h1>{{.PageTitle}}</h1>{{end}}
<p>Matéria: {{.Subject}} - Página {{.PageNumber}}</p>
</header>
<main>
{{range .Sections}}{{.}}{{end}}
</main>
<footer>
<p>Gerador de Atividade com IA - {{.Subject}} - Página {{.PageNumber}} / {{.TotalPages}}</p>
</footer>
</div>{{end}}

{{define "questions"}}{{range .Questions}}<div class="question">
<p>{{.Text}}</p>
{{if .Options}}<ul class="choices">{{range .Options}}<li>{{.Letter}}. {{.Text}}</li>{{end}}</ul>{{end}}
{{range .AnswerLines}}<div class="answer-line"></div>{{end}}
</div>{{end}}{{end}}

{{define "section-generic"}}<div class="section">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{range .Paragraphs}}<p>{{.}}</p>{{end}}
{{template "questions" .}}
</div>{{end}}

{{define "section-coloring"}}<div class="section centered">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{range .Paragraphs}}<p>{{.}}</p>{{end}}
{{if .ImageSrc}}<img class="illustration" src="{{.ImageSrc}}" alt="{{.Title}}">{{end}}
</div>{{end}}

{{define "section-cutting"}}<div class="section centered">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{range .Paragraphs}}<p>{{.}}</p>{{end}}
{{if .ImageSrc}}<img class="illustration cut-line" src="{{.ImageSrc}}" alt="{{.Title}}">{{end}}
</div>{{end}}

{{define "section-image-questions"}}<div class="section">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{if .ImageSrc}}<img class="illustration" src="{{.ImageSrc}}" alt="{{.Title}}">{{end}}
{{template "questions" .}}
</div>{{end}}

{{define "section-image-text-questions"}}<div class="section">
<div class="image-text-row">
<div class="img-col"><img class="illustration" src="{{.ImageSrc}}" alt="{{.Title}}"></div>
<div class="text-col">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{range .Paragraphs}}<p>{{.}}</p>{{end}}
</div>
</div>
{{template "questions" .}}
</div>{{end}}

{{define "section-word-search"}}<div class="section">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{if .GridMissing}}<p class="grid-missing">Oops! A grade do caça-palavras não pôde ser gerada. Tente novamente ou com outras opções.</p>{{else}}<table class="word-search"><tbody>
{{range .GridRows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody></table>{{end}}
{{if .Words}}<div class="word-list">
<h3>Palavras para encontrar:</h3>
<ul class="items">{{range .Words}}<li>{{.}}</li>{{end}}</ul>
</div>{{end}}
</div>{{end}}

{{define "section-ordering"}}<div class="section">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{range .Paragraphs}}<p>{{.}}</p>{{end}}
{{template "questions" .}}
{{if .Options}}<ul class="items">{{range .Options}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>{{end}}
`))
