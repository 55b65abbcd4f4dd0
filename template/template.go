package template

import "html/template"

// reportTmpl is the single-page report. All assets are inlined; the only
// interactivity is local tab switching.
var reportTmpl = template.Must(template.New("report").Parse(reportPage))

const reportPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Side-by-Side HTML Comparison</title>
<style>
* { box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  margin: 0;
  padding: 0;
  background: #f5f5f5;
}
.header {
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  color: white;
  padding: 30px;
  box-shadow: 0 2px 10px rgba(0,0,0,0.1);
}
.header h1 { margin: 0 0 10px 0; font-size: 2.2em; }
.header p { margin: 5px 0; opacity: 0.9; }
.container { max-width: 1800px; margin: 0 auto; padding: 20px; }
.stats-bar {
  background: white;
  padding: 20px;
  border-radius: 10px;
  margin-bottom: 20px;
  box-shadow: 0 2px 10px rgba(0,0,0,0.1);
  display: flex;
  justify-content: space-around;
  flex-wrap: wrap;
  gap: 15px;
}
.stat-box {
  text-align: center;
  padding: 15px 25px;
  background: linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%);
  border-radius: 8px;
  min-width: 140px;
}
.stat-label {
  font-size: 0.85em;
  color: #666;
  text-transform: uppercase;
  letter-spacing: 1px;
  margin-bottom: 5px;
}
.stat-value { font-size: 2em; font-weight: bold; color: #2c3e50; }
.similarity-bar {
  width: 100%;
  height: 40px;
  background: #e0e0e0;
  border-radius: 20px;
  overflow: hidden;
  margin: 20px 0;
}
.similarity-fill {
  height: 100%;
  background: linear-gradient(90deg, #e74c3c 0%, #f39c12 30%, #f1c40f 50%, #2ecc71 100%);
  display: flex;
  align-items: center;
  justify-content: center;
  color: white;
  font-weight: bold;
}
.tabs {
  display: flex;
  gap: 10px;
  margin-bottom: 20px;
  background: white;
  padding: 15px;
  border-radius: 10px;
  box-shadow: 0 2px 10px rgba(0,0,0,0.1);
}
.tab {
  padding: 12px 25px;
  background: #f0f0f0;
  border: none;
  border-radius: 8px;
  cursor: pointer;
  font-size: 1em;
  font-weight: 600;
}
.tab:hover { background: #e0e0e0; }
.tab.active {
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  color: white;
}
.tab-content {
  display: none;
  background: white;
  padding: 30px;
  border-radius: 10px;
  box-shadow: 0 2px 10px rgba(0,0,0,0.1);
}
.tab-content.active { display: block; }
.comparison-grid {
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: 20px;
  margin-top: 20px;
}
.version-panel {
  background: #fafafa;
  border-radius: 10px;
  padding: 20px;
  border: 2px solid #e0e0e0;
}
.version-panel.v1 { border-left: 4px solid #e74c3c; }
.version-panel.v2 { border-left: 4px solid #2ecc71; }
.panel-header {
  font-size: 1.3em;
  font-weight: bold;
  margin-bottom: 15px;
  padding-bottom: 10px;
  border-bottom: 2px solid #e0e0e0;
}
.version-panel.v1 .panel-header { color: #e74c3c; }
.version-panel.v2 .panel-header { color: #2ecc71; }
.content-box {
  background: white;
  padding: 20px;
  border-radius: 8px;
  max-height: 600px;
  overflow-y: auto;
  font-family: 'Courier New', monospace;
  font-size: 0.9em;
  line-height: 1.6;
  white-space: pre-wrap;
  word-wrap: break-word;
}
.diff-removed {
  background: #ffecec;
  color: #c0392b;
  padding: 2px 4px;
  border-radius: 3px;
  text-decoration: line-through;
}
.diff-added {
  background: #e8f5e9;
  color: #27ae60;
  padding: 2px 4px;
  border-radius: 3px;
  font-weight: 600;
}
.diff-changed {
  background: #fff3cd;
  color: #856404;
  padding: 2px 4px;
  border-radius: 3px;
}
.link-list { list-style: none; padding: 0; margin: 0; }
.link-item {
  padding: 12px;
  margin: 8px 0;
  background: white;
  border-radius: 6px;
  border-left: 4px solid #3498db;
}
.link-item.removed { border-left-color: #e74c3c; background: #ffebee; }
.link-item.added { border-left-color: #2ecc71; background: #e8f5e9; }
.link-text { font-weight: 600; color: #2c3e50; margin-bottom: 4px; }
.link-url {
  font-family: 'Courier New', monospace;
  font-size: 0.85em;
  color: #7f8c8d;
  word-break: break-all;
}
.section-title {
  font-size: 1.5em;
  font-weight: bold;
  margin: 30px 0 15px 0;
  color: #2c3e50;
  border-bottom: 3px solid #3498db;
  padding-bottom: 10px;
}
.badge {
  display: inline-block;
  padding: 4px 10px;
  border-radius: 12px;
  font-size: 0.8em;
  font-weight: 600;
  margin-left: 10px;
}
.badge-danger { background: #e74c3c; color: white; }
.badge-success { background: #2ecc71; color: white; }
.badge-info { background: #3498db; color: white; }
table.diff {
  width: 100%;
  border-collapse: collapse;
  font-family: 'Courier New', monospace;
  font-size: 0.85em;
}
table.diff td { padding: 2px 8px; vertical-align: top; white-space: pre-wrap; word-break: break-all; }
table.diff td.lineno { color: #999; text-align: right; user-select: none; width: 1%; }
table.diff th { background: #e0e0e0; padding: 6px 8px; text-align: left; }
tr.line-delete td { background: #ffecec; }
tr.line-insert td { background: #e8f5e9; }
tr.line-replace td { background: #fff3cd; }
tr.diff-sep td { background: #f0f0f0; text-align: center; color: #999; }
.note {
  background: #fff3cd;
  border-left: 4px solid #ffc107;
  padding: 15px;
  margin: 20px 0;
  border-radius: 5px;
}
.legend {
  display: flex;
  gap: 20px;
  margin: 20px 0;
  padding: 15px;
  background: #f8f9fa;
  border-radius: 8px;
}
.legend-item { display: flex; align-items: center; gap: 8px; }
.legend-box { width: 20px; height: 20px; border-radius: 4px; }
.scrollable-section {
  max-height: 500px;
  overflow-y: auto;
  padding: 15px;
  background: #fafafa;
  border-radius: 8px;
  margin: 10px 0;
}
</style>
</head>
<body>
<div class="header">
  <h1>Side-by-Side HTML Comparison</h1>
  <p><strong>File 1:</strong> {{.File1}}</p>
  <p><strong>File 2:</strong> {{.File2}}</p>
  <p><strong>Marker:</strong> {{.Marker}}</p>
  <p><strong>Generated:</strong> {{.Generated}}</p>
</div>

<div class="container">
  <div class="stats-bar">
    <div class="stat-box">
      <div class="stat-label">Text Similarity</div>
      <div class="stat-value">{{.SimilarityPct}}</div>
    </div>
    <div class="stat-box">
      <div class="stat-label">Links V1</div>
      <div class="stat-value">{{.TotalV1}}</div>
    </div>
    <div class="stat-box">
      <div class="stat-label">Links V2</div>
      <div class="stat-value">{{.TotalV2}}</div>
    </div>
    <div class="stat-box">
      <div class="stat-label">Common</div>
      <div class="stat-value">{{.Common}}</div>
    </div>
    <div class="stat-box">
      <div class="stat-label">Removed</div>
      <div class="stat-value">{{.Removed}}</div>
    </div>
    <div class="stat-box">
      <div class="stat-label">Added</div>
      <div class="stat-value">{{.Added}}</div>
    </div>
  </div>

  <div class="similarity-bar">
    <div class="similarity-fill" style="{{.GaugeStyle}}">{{.SimilarityPct}} Similar</div>
  </div>

  <div class="tabs">
    <button class="tab active" onclick="showTab('side-by-side', this)">Side-by-Side Text</button>
    <button class="tab" onclick="showTab('links', this)">Links Comparison</button>
    <button class="tab" onclick="showTab('html-diff', this)">HTML Diff</button>
    <button class="tab" onclick="showTab('full-text', this)">Full Text</button>
  </div>

  <div id="side-by-side" class="tab-content active">
    <h2 class="section-title">Side-by-Side Text Comparison</h2>
    <div class="legend">
      <div class="legend-item"><div class="legend-box diff-removed"></div><span>Removed from V1</span></div>
      <div class="legend-item"><div class="legend-box diff-added"></div><span>Added in V2</span></div>
      <div class="legend-item"><div class="legend-box diff-changed"></div><span>Changed</span></div>
    </div>
    <div class="comparison-grid">
      <div class="version-panel v1">
        <div class="panel-header">Version 1 (Original)</div>
        <div class="content-box">{{.DiffV1}}</div>
      </div>
      <div class="version-panel v2">
        <div class="panel-header">Version 2 (Updated)</div>
        <div class="content-box">{{.DiffV2}}</div>
      </div>
    </div>
  </div>

  <div id="links" class="tab-content">
    <h2 class="section-title">Links Comparison</h2>
    <div class="comparison-grid">
      <div class="version-panel v1">
        <div class="panel-header">Removed Links<span class="badge badge-danger">{{.Removed}}</span></div>
        <div class="scrollable-section">
          <ul class="link-list">
            {{range .RemovedLinks}}<li class="link-item removed"><div class="link-text">{{if .Text}}{{.Text}}{{else}}(no text){{end}}</div><div class="link-url">{{.URL}}</div></li>
            {{else}}<li class="link-item">No links removed</li>{{end}}
          </ul>
        </div>
      </div>
      <div class="version-panel v2">
        <div class="panel-header">Added Links<span class="badge badge-success">{{.Added}}</span></div>
        <div class="scrollable-section">
          <ul class="link-list">
            {{range .AddedLinks}}<li class="link-item added"><div class="link-text">{{if .Text}}{{.Text}}{{else}}(no text){{end}}</div><div class="link-url">{{.URL}}</div></li>
            {{else}}<li class="link-item">No links added</li>{{end}}
          </ul>
        </div>
      </div>
    </div>
    <h3 class="section-title">Common Links<span class="badge badge-info">{{.Common}}</span></h3>
    <div class="scrollable-section">
      <ul class="link-list">
        {{range .CommonLinks}}<li class="link-item"><div class="link-text">{{if .Text}}{{.Text}}{{else}}(no text){{end}}</div><div class="link-url">{{.URL}}</div></li>
        {{end}}{{if .CommonMore}}<li class="link-item">... and {{.CommonMore}} more</li>{{end}}
      </ul>
    </div>
  </div>

  <div id="html-diff" class="tab-content">
    <h2 class="section-title">HTML Source Diff</h2>
    <div class="note">
      <strong>Note:</strong> This is a line-by-line comparison of the raw HTML source.
      Unchanged runs between changes are collapsed.
    </div>
    <div style="overflow-x: auto;">
      {{if .MarkupGroups}}<table class="diff">
        <tr><th></th><th>Version 1</th><th></th><th>Version 2</th></tr>
        {{range $i, $g := .MarkupGroups}}{{if $i}}<tr class="diff-sep"><td colspan="4">&middot;&middot;&middot;</td></tr>{{end}}
        {{range $g.Rows}}<tr class="{{.Class}}"><td class="lineno">{{.LeftNo}}</td><td>{{.Left}}</td><td class="lineno">{{.RightNo}}</td><td>{{.Right}}</td></tr>
        {{end}}{{end}}
      </table>{{else}}<p>No differences found.</p>{{end}}
    </div>
  </div>

  <div id="full-text" class="tab-content">
    <h2 class="section-title">Full Text Content</h2>
    <div class="comparison-grid">
      <div class="version-panel v1">
        <div class="panel-header">Version 1 Full Text</div>
        <div class="content-box">{{.Text1}}</div>
      </div>
      <div class="version-panel v2">
        <div class="panel-header">Version 2 Full Text</div>
        <div class="content-box">{{.Text2}}</div>
      </div>
    </div>
  </div>
</div>

<script>
function showTab(name, btn) {
  document.querySelectorAll('.tab-content').forEach(function (el) {
    el.classList.remove('active');
  });
  document.querySelectorAll('.tab').forEach(function (el) {
    el.classList.remove('active');
  });
  document.getElementById(name).classList.add('active');
  btn.classList.add('active');
}
</script>
</body>
</html>
`
