package preview

// resumeTemplate is the embedded preview page with theme-aware styling. The
// palette's primary and secondary colors are injected as CSS custom
// properties so every theme shares the same markup.
const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
:root {
    --primary: {{.Primary}};
    --secondary: {{.Secondary}};
}
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: "Helvetica Neue", Arial, sans-serif;
    color: #1f2937;
    background: #fff;
    max-width: 800px;
    margin: 0 auto;
    padding: 40px;
}
header {
    border-bottom: 3px solid var(--primary);
    padding-bottom: 16px;
    margin-bottom: 24px;
}
h1 { color: var(--primary); font-size: 28px; }
.designation { font-size: 16px; color: #4b5563; margin-top: 4px; }
.summary { margin-top: 12px; font-size: 14px; line-height: 1.5; }
.contact { margin-top: 10px; font-size: 12px; color: #4b5563; }
.contact span { margin-right: 14px; }
section { margin-bottom: 22px; }
h2 {
    font-size: 14px;
    text-transform: uppercase;
    letter-spacing: 1px;
    color: var(--primary);
    background: var(--secondary);
    padding: 4px 8px;
    margin-bottom: 10px;
}
.entry { margin-bottom: 12px; }
.entry .head { display: flex; justify-content: space-between; font-size: 14px; }
.entry .head strong { color: #111827; }
.entry .period { color: #6b7280; font-size: 12px; }
.entry .sub { font-size: 13px; color: #374151; }
.entry p { font-size: 13px; margin-top: 4px; line-height: 1.4; }
.meter { display: flex; align-items: center; margin-bottom: 8px; font-size: 13px; }
.meter .name { width: 160px; }
.meter .bar { flex: 1; height: 6px; background: var(--secondary); border-radius: 3px; }
.meter .fill { height: 6px; background: var(--primary); border-radius: 3px; }
.tags span {
    display: inline-block;
    background: var(--secondary);
    color: var(--primary);
    border-radius: 12px;
    padding: 3px 10px;
    margin: 0 6px 6px 0;
    font-size: 12px;
}
body.classic h1, body.classic h2 { font-family: Georgia, "Times New Roman", serif; }
body.classic h2 { background: none; border-bottom: 1px solid var(--primary); padding-left: 0; }
body.creative header { border-bottom: none; background: var(--secondary); padding: 16px; border-radius: 8px; }
body.minimal h2 { background: none; color: #111827; letter-spacing: 2px; }
body.minimal header { border-bottom: 1px solid #e5e7eb; }
.empty-state {
    text-align: center;
    color: #6b7280;
    padding: 48px 0;
}
.empty-state strong { display: block; color: var(--primary); font-size: 18px; margin-bottom: 8px; }
</style>
</head>
<body class="{{.Theme}}">
<header>
    <h1>{{.FullName}}</h1>
    <div class="designation">{{.Designation}}</div>
    {{- if .Summary}}
    <p class="summary">{{.Summary}}</p>
    {{- end}}
    <div class="contact">
        {{- if .Email}}<span>{{.Email}}</span>{{end}}
        {{- if .Phone}}<span>{{.Phone}}</span>{{end}}
        {{- if .Location}}<span>{{.Location}}</span>{{end}}
        {{- if .LinkedIn}}<span>{{.LinkedIn}}</span>{{end}}
        {{- if .GitHub}}<span>{{.GitHub}}</span>{{end}}
        {{- if .Website}}<span>{{.Website}}</span>{{end}}
    </div>
</header>
{{- if .Empty}}
<div class="empty-state">
    <strong>Start Building Your Resume</strong>
    Fill in the sections on the left to see your resume take shape here.
</div>
{{- end}}
{{- if .HasWork}}
<section>
    <h2>Work Experience</h2>
    {{- range .Work}}
    <div class="entry">
        <div class="head"><strong>{{.Role}}</strong><span class="period">{{.Period}}</span></div>
        <div class="sub">{{.Company}}</div>
        {{- if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{- end}}
</section>
{{- end}}
{{- if .HasEducation}}
<section>
    <h2>Education</h2>
    {{- range .Education}}
    <div class="entry">
        <div class="head"><strong>{{.Degree}}</strong><span class="period">{{.Period}}</span></div>
        <div class="sub">{{.Institution}}</div>
    </div>
    {{- end}}
</section>
{{- end}}
{{- if .HasSkills}}
<section>
    <h2>Skills</h2>
    {{- range .Skills}}
    <div class="meter">
        <span class="name">{{.Name}}</span>
        <span class="bar"><span class="fill" style="width: {{.Progress}}%"></span></span>
    </div>
    {{- end}}
</section>
{{- end}}
{{- if .HasProjects}}
<section>
    <h2>Projects</h2>
    {{- range .Projects}}
    <div class="entry">
        <div class="head"><strong>{{.Title}}</strong></div>
        {{- if .Description}}<p>{{.Description}}</p>{{end}}
        <div class="sub">
            {{- if .GitHub}}<span>{{.GitHub}}</span>{{end}}
            {{- if .LiveDemo}}<span>{{.LiveDemo}}</span>{{end}}
        </div>
    </div>
    {{- end}}
</section>
{{- end}}
{{- if .HasCerts}}
<section>
    <h2>Certifications</h2>
    {{- range .Certifications}}
    <div class="entry">
        <div class="head"><strong>{{.Title}}</strong><span class="period">{{.Year}}</span></div>
        <div class="sub">{{.Issuer}}</div>
    </div>
    {{- end}}
</section>
{{- end}}
{{- if .HasLanguages}}
<section>
    <h2>Languages</h2>
    {{- range .Languages}}
    <div class="meter">
        <span class="name">{{.Name}}</span>
        <span class="bar"><span class="fill" style="width: {{.Progress}}%"></span></span>
    </div>
    {{- end}}
</section>
{{- end}}
{{- if .HasInterests}}
<section>
    <h2>Interests</h2>
    <div class="tags">
        {{- range .Interests}}<span>{{.}}</span>{{end}}
    </div>
</section>
{{- end}}
</body>
</html>
`
