package site

// StaticFiles returns the generated files every page links to, by name.
func StaticFiles() map[string]string {
	return map[string]string{
		"style.css": cssContent,
		"script.js": jsContent,
	}
}

// layoutTemplate wraps every page: header fragment, sidebar navigation, the
// page surface and the footer fragment.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
  <link rel="stylesheet" href="{{.BasePath}}highlight.css">
</head>
<body>
  <div class="header-container">
    {{.Header}}
    <button class="theme-toggle" id="btn_theme" aria-label="Toggle theme">
      <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/>
      </svg>
      <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
      </svg>
    </button>
  </div>
  <div class="layout" id="top">
    <nav class="sidebar">
      <a class="site-title" href="{{.BasePath}}index.html">{{.SiteTitle}}</a>
      {{.Nav}}
    </nav>
    {{.Body}}
  </div>
  <div class="footer-container">
    {{.Footer}}
    <a class="back-to-top" href="#top">Back to top</a>
  </div>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// indexTemplate renders the project cards of the landing page. Each card
// carries its page id and links to the routed project page.
const indexTemplate = `<main class="project-index">
{{range .Groups}}  <section class="project-group">
    {{if .Name}}<h2 class="group-title">{{.Name}}</h2>{{end}}
    <div class="project-grid">
{{range .Entries}}      <a class="project-card-simple" data-page="{{.ID}}" href="{{$.BasePath}}{{.Href}}">
        {{if .Image}}<img class="project-card-img" src="{{.Image}}" alt="">{{end}}
        <h3>{{.Title}}</h3>
        {{if .Summary}}<p>{{.Summary}}</p>{{end}}
      </a>
{{end}}    </div>
  </section>
{{end}}</main>`

// cssContent is the stylesheet for the site.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --code-bg: #f1f3f5;
  --sidebar-width: 240px;
  --content-max-width: 900px;
}

body.dark-theme {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --text: #c0caf5;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --code-bg: #1f2030;
}

*, *::before, *::after { box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

.header-container, .footer-container {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 0.75rem 1.5rem;
  border-bottom: 1px solid var(--border);
  background: var(--bg-secondary);
}
.footer-container { border-top: 1px solid var(--border); border-bottom: none; }

.layout { display: flex; min-height: 80vh; }

.sidebar {
  width: var(--sidebar-width);
  flex-shrink: 0;
  padding: 1.25rem;
  border-right: 1px solid var(--border);
}
.sidebar ul { list-style: none; margin: 0; padding-left: 0.75rem; }
.sidebar .site-title { display: block; font-weight: 700; margin-bottom: 1rem; }
.sidebar .group > span { display: block; font-weight: 600; color: var(--text-muted); margin-top: 0.5rem; }
.sidebar a.active { font-weight: 700; }

.project-main, .project-index {
  flex: 1;
  max-width: var(--content-max-width);
  padding: 2rem;
}

.title-lvl1 { font-size: 2.2rem; margin: 0 0 1rem; }
.title-lvl2 { font-size: 1.6rem; margin: 2rem 0 0.75rem; }
.title-lvl3 { font-size: 1.3rem; margin: 1.5rem 0 0.5rem; }
.title-lvl4, .title-lvl5, .title-lvl6 { font-size: 1.1rem; margin: 1rem 0 0.5rem; }

.text { margin: 0 0 1rem; }

.list { display: flex; flex-wrap: wrap; gap: 0.75rem; list-style: none; padding: 0; }
.list-descriptions { padding-left: 1.25rem; }
.list-descriptions li { margin-bottom: 0.5rem; }
.list-item-img { width: 48px; height: 48px; }

.code-pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 1rem;
  overflow-x: auto;
}

.error404, .content-unavailable, .load-error { color: var(--text-muted); }

.project-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1rem; }
.project-card-simple {
  display: block;
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 1rem;
  color: var(--text);
  cursor: pointer;
}
.project-card-simple:hover { border-color: var(--accent); text-decoration: none; }
.project-card-img { width: 100%; border-radius: 4px; }

.theme-toggle { background: none; border: none; color: var(--text); cursor: pointer; }
.sun-icon { display: none; }
body.dark-theme .sun-icon { display: block; }
body.dark-theme .moon-icon { display: none; }

@media (max-width: 768px) {
  .layout { flex-direction: column; }
  .sidebar { width: auto; border-right: none; border-bottom: 1px solid var(--border); }
}
`

// jsContent restores and toggles the theme, and scrolls smoothly to in-page
// anchors. Both work on the static build and the dev server.
const jsContent = `(function() {
  var body = document.body;
  var storageKey = "theme";

  function applyTheme(theme) {
    body.classList.toggle("dark-theme", theme === "dark");
  }

  try { applyTheme(localStorage.getItem(storageKey)); } catch (e) {}

  var toggle = document.getElementById("btn_theme");
  if (toggle) {
    toggle.addEventListener("click", function() {
      body.classList.toggle("dark-theme");
      var theme = body.classList.contains("dark-theme") ? "dark" : "light";
      try { localStorage.setItem(storageKey, theme); } catch (e) {}
    });
  }

  function scrollToTarget(selector) {
    var target = selector === "body" ? body : document.querySelector(selector);
    if (target) {
      target.scrollIntoView({ behavior: "smooth", block: "start" });
    } else {
      window.location.href = selector;
    }
  }

  document.querySelectorAll('a[href^="#"]').forEach(function(anchor) {
    anchor.addEventListener("click", function(e) {
      var href = anchor.getAttribute("href");
      if (href === "#" || href === "#top") {
        e.preventDefault();
        scrollToTarget("body");
      } else if (href.length > 1) {
        e.preventDefault();
        scrollToTarget(href);
      }
    });
  });
})();
`
