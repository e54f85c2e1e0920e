package web

import (
	"html/template"
	"net/http"
)

type templateWrapper struct {
	tmpl *template.Template
}

func newTemplateWrapper() *templateWrapper {
	return &templateWrapper{tmpl: newTemplates()}
}

func (tw *templateWrapper) Render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = tw.tmpl.ExecuteTemplate(w, "page", data)
}

func newTemplates() *template.Template {
	return template.Must(template.New("page").Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Journey Board</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">
  <style>
    :root {
      color-scheme: light;
    }
    body {
      margin: 0;
      font-family: "Inter", "Helvetica Neue", sans-serif;
      color: #1f2937;
      background: #f3f4f6;
    }
    header {
      display: flex;
      justify-content: space-between;
      align-items: center;
      padding: 16px 24px;
      border-bottom: 1px solid #e5e7eb;
      background: #ffffff;
    }
    header h1 {
      margin: 0;
      font-size: 20px;
    }
    main {
      display: flex;
      gap: 18px;
      padding: 18px 24px 28px;
    }
    .pane {
      background: #ffffff;
      border: 1px solid #e5e7eb;
      border-radius: 12px;
      box-shadow: 0 4px 16px rgba(15, 23, 42, 0.06);
    }
    .board-pane {
      width: 35%;
      min-width: 260px;
      padding: 16px;
    }
    .detail-pane {
      flex: 1;
      padding: 18px 22px 22px;
    }
    form.inline {
      display: inline;
      margin: 0;
    }
    button {
      padding: 6px 12px;
      border-radius: 8px;
      border: 1px solid #d1d5db;
      background: #f9fafb;
      font-family: inherit;
      cursor: pointer;
    }
    button.link {
      border: none;
      background: none;
      padding: 0;
    }
    .task-list {
      list-style: none;
      padding: 0;
      margin: 0;
      display: flex;
      flex-direction: column;
      gap: 8px;
    }
    .task {
      border: 1px solid #e5e7eb;
      border-radius: 10px;
      padding: 10px 12px;
    }
    .task.active {
      border-color: #4f46e5;
      background: #eef2ff;
    }
    .task-header {
      display: flex;
      align-items: center;
      gap: 10px;
    }
    .task-header a {
      flex: 1;
      text-decoration: none;
      color: inherit;
    }
    .task-title {
      font-weight: 600;
      display: block;
    }
    .task-meta {
      font-size: 12px;
      color: #6b7280;
    }
    .task-assets {
      list-style: none;
      margin: 8px 0 0 34px;
      padding: 0;
      font-size: 13px;
    }
    .task-assets li {
      display: flex;
      gap: 8px;
      align-items: center;
      padding: 2px 0;
    }
    .status-badge {
      display: inline-block;
      padding: 3px 10px;
      border-radius: 999px;
      font-size: 12px;
      font-weight: 600;
    }
    .status-in-progress {
      background: #fef3c7;
      color: #92400e;
    }
    .status-completed {
      background: #d1fae5;
      color: #065f46;
    }
    .status-pending {
      background: #f3f4f6;
      color: #6b7280;
    }
    .cards {
      display: flex;
      flex-direction: column;
      gap: 12px;
      margin-top: 16px;
    }
    .card {
      border: 1px solid #e5e7eb;
      border-radius: 10px;
      padding: 12px 14px;
    }
    .card-header {
      display: flex;
      align-items: center;
      gap: 12px;
      width: 100%;
      text-align: left;
    }
    .card-icon {
      width: 36px;
      height: 36px;
      border-radius: 8px;
      display: flex;
      align-items: center;
      justify-content: center;
    }
    .card-title {
      flex: 1;
      font-weight: 600;
    }
    .card-meta {
      font-size: 12px;
      color: #6b7280;
    }
    .card-description {
      margin: 10px 0 0 48px;
      color: #374151;
    }
    .actions {
      display: flex;
      gap: 10px;
      margin: 10px 0 0 48px;
    }
    .notice {
      padding: 10px 12px;
      border-radius: 8px;
      background: #e0e7ff;
      border: 1px solid #c7d2fe;
      margin-bottom: 12px;
      white-space: pre-wrap;
    }
    .error {
      padding: 10px 12px;
      border-radius: 8px;
      background: #fee2e2;
      border: 1px solid #fecaca;
      margin-bottom: 12px;
      color: #7f1d1d;
    }
    .muted {
      color: #6b7280;
    }
    @media (max-width: 900px) {
      main {
        flex-direction: column;
      }
      .board-pane {
        width: auto;
      }
    }
  </style>
</head>
<body>
  <header>
    <h1>Journey Board</h1>
    <form class="inline" method="post" action="/board/events">
      <input type="hidden" name="role" value="global-toggle-button">
      <button type="submit" data-role="global-toggle-button" class="{{if .Control.Expanded}}expanded{{end}}">
        <i class="fas {{if .Control.Expanded}}fa-chevron-up{{else}}fa-chevron-down{{end}}"></i> {{.Control.Label}}
      </button>
    </form>
  </header>
  <main>
    <section class="pane board-pane">
      {{if .Fallback}}<p class="muted">Showing built-in sample data.</p>{{end}}
      <ul class="task-list">
        {{range .Rows}}
          <li class="task {{if .Highlighted}}active{{end}}" data-task="{{.TaskID}}">
            <div class="task-header">
              <form class="inline" method="post" action="/board/events">
                <input type="hidden" name="role" value="checkbox">
                <input type="hidden" name="id" value="{{.TaskID}}">
                <input type="hidden" name="checked" value="{{if .Checked}}false{{else}}true{{end}}">
                <button class="link" type="submit" data-role="checkbox" aria-pressed="{{.Checked}}">{{if .Checked}}&#9745;{{else}}&#9744;{{end}}</button>
              </form>
              <a href="/board?id={{.TaskID}}" data-role="row">
                <span class="task-title">{{.Name}}</span>
                <span class="task-meta">{{.AssetCount}} · <span class="task-status" style="color: {{.StatusColor}}">{{.StatusLabel}}</span></span>
              </a>
              <form class="inline" method="post" action="/board/events">
                <input type="hidden" name="role" value="toggle">
                <input type="hidden" name="id" value="{{.TaskID}}">
                <button class="link" type="submit" data-role="toggle" aria-expanded="{{.Expanded}}">
                  <i class="fas {{if .Expanded}}fa-chevron-up{{else}}fa-chevron-down{{end}}"></i>
                </button>
              </form>
            </div>
            {{if .Expanded}}
              <ul class="task-assets">
                {{range .Assets}}
                  <li><i class="fas {{.Icon}}" style="color: {{.Color}}"></i><span>{{.Name}}</span></li>
                {{end}}
              </ul>
            {{end}}
          </li>
        {{else}}
          <li class="muted">No tasks found.</li>
        {{end}}
      </ul>
    </section>
    <section class="pane detail-pane">
      {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
      {{range .Notices}}<div class="notice" role="status">{{.}}</div>{{end}}
      {{range .OpenURLs}}
        <p class="muted">Opening <a href="{{.}}" target="_blank" rel="noopener">{{.}}</a></p>
        <script>window.open({{.}}, "_blank");</script>
      {{end}}
      {{if .HasDetail}}
        <h2>{{.Detail.Name}}</h2>
        <span class="{{.Detail.Badge.Class}}">{{.Detail.Badge.Label}}</span>
        <div class="cards">
          {{range .Detail.Cards}}
            <div class="card" data-asset="{{.ID}}">
              <form method="post" action="/board/events">
                <input type="hidden" name="role" value="header">
                <input type="hidden" name="id" value="{{$.Detail.TaskID}}">
                <input type="hidden" name="asset" value="{{.ID}}">
                <button class="link card-header" type="submit" data-role="header">
                  <span class="card-icon" style="background-color: {{.Tint}}; color: {{.Color}}"><i class="fas {{.Icon}}"></i></span>
                  <span class="card-title">{{.Name}}<br><span class="card-meta">{{.TypeLabel}} · {{.Duration}}</span></span>
                </button>
              </form>
              <form class="inline" method="post" action="/board/events">
                <input type="hidden" name="role" value="expand-button">
                <input type="hidden" name="id" value="{{$.Detail.TaskID}}">
                <input type="hidden" name="asset" value="{{.ID}}">
                <button class="link" type="submit" data-role="expand-button" aria-expanded="{{.Expanded}}">
                  <i class="fas {{if .Expanded}}fa-chevron-up{{else}}fa-chevron-down{{end}}"></i>
                </button>
              </form>
              {{if .Expanded}}<p class="card-description">{{.Description}}</p>{{end}}
              <div class="actions">
                <form class="inline" method="post" action="/board/events">
                  <input type="hidden" name="role" value="start-button">
                  <input type="hidden" name="id" value="{{$.Detail.TaskID}}">
                  <input type="hidden" name="asset" value="{{.ID}}">
                  <button type="submit" data-role="start-button">Start</button>
                </form>
                <form class="inline" method="post" action="/board/events">
                  <input type="hidden" name="role" value="preview-button">
                  <input type="hidden" name="id" value="{{$.Detail.TaskID}}">
                  <input type="hidden" name="asset" value="{{.ID}}">
                  <button type="submit" data-role="preview-button">Preview</button>
                </form>
              </div>
            </div>
          {{else}}
            <p class="muted">This task has no assets.</p>
          {{end}}
        </div>
      {{else}}
        <p class="muted">No task selected.</p>
      {{end}}
    </section>
  </main>
</body>
</html>
`
