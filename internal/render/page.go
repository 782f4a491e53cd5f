// Package render turns a view's state into the job board HTML page.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/filter"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
)

type BandOption struct {
	Value    filter.ExperienceBand
	Label    string
	Selected bool
}

type Page struct {
	Criteria   filter.Criteria
	Jobs       []models.Job
	Bands      []BandOption
	SalaryMax  int
	SalaryStep int
}

var bandLabels = map[filter.ExperienceBand]string{
	filter.ExperienceAll:    "Любой опыт",
	filter.ExperienceJunior: "Junior (0-1 год)",
	filter.ExperienceMiddle: "Middle (3-5 лет)",
	filter.ExperienceSenior: "Senior (5+ лет)",
}

// NewPage builds the template data for the given criteria and result list.
func NewPage(c filter.Criteria, jobs []models.Job) Page {
	bands := filter.ExperienceBands()
	opts := make([]BandOption, len(bands))
	for i, b := range bands {
		opts[i] = BandOption{Value: b, Label: bandLabels[b], Selected: b == c.Experience}
	}
	return Page{
		Criteria:   c,
		Jobs:       jobs,
		Bands:      opts,
		SalaryMax:  filter.SalaryMaxThousands,
		SalaryStep: filter.SalaryStepThousands,
	}
}

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Render writes the page to w. The template is executed into a buffer first
// so a failed render never leaves a half-written response.
func Render(w io.Writer, p Page) error {
	var body bytes.Buffer
	if err := pageTmpl.Execute(&body, p); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	if _, err := body.WriteTo(w); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Java Jobs Bot</title>
    <style>
        body { font-family: Arial, sans-serif; background: linear-gradient(135deg, #faf5ff, #eff6ff); margin: 0; }
        .container { max-width: 1100px; margin: 0 auto; padding: 32px 16px; }
        header { text-align: center; margin-bottom: 40px; }
        h1 { font-size: 44px; color: #7c3aed; margin-bottom: 8px; }
        .subtitle { color: #6b7280; font-size: 20px; }
        .card { background: #fff; border: 2px solid #e5e7eb; border-radius: 12px; padding: 20px; margin-bottom: 20px; }
        .row { display: flex; gap: 12px; }
        .row > * { flex: 1; }
        .badge { display: inline-block; padding: 2px 10px; border-radius: 999px; background: #ede9fe; font-size: 13px; margin: 2px; }
        .salary { background: #7c3aed; color: #fff; font-size: 18px; padding: 6px 14px; }
        .title { font-size: 24px; margin: 0 0 6px; }
        .company { font-size: 18px; color: #374151; }
        .meta { color: #4b5563; font-size: 14px; margin-right: 12px; }
        .active { background: #7c3aed; color: #fff; }
        .empty { text-align: center; padding: 48px 0; }
        .empty .face { font-size: 60px; }
    </style>
</head>
<body>
<div class="container">
    <header>
        <h1>Java Jobs Bot</h1>
        <p class="subtitle">Найди работу мечты рядом с тобой 🚀</p>
    </header>

    <section class="card search">
        <h2>Поиск вакансий</h2>
        <p>Введите должность или технологию</p>
        <form method="post" action="/search" class="row">
            <input type="text" name="q" value="{{.Criteria.Query}}" placeholder="Spring Boot, Kafka, Senior...">
            <button type="submit">Найти</button>
        </form>
    </section>

    <section class="card filters">
        <h2>Фильтры</h2>
        <div class="row">
            <form method="post" action="/filters/salary">
                <label for="min_salary">Минимальная зарплата: {{.Criteria.MinSalaryThousands}}k ₽</label>
                <input type="range" id="min_salary" name="min_salary" min="0" max="{{.SalaryMax}}" step="{{.SalaryStep}}" value="{{.Criteria.MinSalaryThousands}}" onchange="this.form.submit()">
            </form>
            <form method="post" action="/filters/experience">
                <label for="experience">Опыт работы</label>
                <select id="experience" name="experience" onchange="this.form.submit()">
                    {{range .Bands}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
                    {{end}}
                </select>
            </form>
        </div>
        <div class="row toggles">
            <form method="post" action="/location">
                <button type="submit" class="location{{if .Criteria.LocationEnabled}} active{{end}}">{{if .Criteria.LocationEnabled}}📍 Рядом со мной{{else}}Включить геолокацию{{end}}</button>
            </form>
            <form method="post" action="/notifications">
                <button type="submit" class="notifications{{if .Criteria.NotificationsEnabled}} active{{end}}">{{if .Criteria.NotificationsEnabled}}🔔 Уведомления вкл{{else}}Уведомления{{end}}</button>
            </form>
        </div>
    </section>

    <div class="summary row">
        <h2 class="count">Найдено вакансий: {{len .Jobs}}</h2>
        {{if .Criteria.LocationEnabled}}<span class="badge sort-badge">Сортировка по расстоянию</span>{{end}}
    </div>

    {{$location := .Criteria.LocationEnabled}}
    {{range .Jobs}}
    <article class="card job" data-id="{{.ID}}">
        <div class="row">
            <div>
                <h3 class="title">{{.Title}}</h3>
                <div class="company">🏢 {{.Company}}</div>
            </div>
            <span class="badge salary">{{.Salary}}</span>
        </div>
        <p class="description">{{.Description}}</p>
        <div>
            <span class="meta place">{{.Location}}</span>
            {{if and $location .Distance}}<span class="badge distance">{{.Distance}}</span>{{end}}
            <span class="meta experience">{{.Experience}}</span>
        </div>
        <div class="tags">{{range .Tags}}<span class="badge tag">{{.}}</span>{{end}}</div>
        <div class="row actions">
            <button type="button">Откликнуться</button>
            <button type="button">Сохранить</button>
        </div>
    </article>
    {{end}}

    {{if not .Jobs}}
    <section class="card empty">
        <div class="face">😕</div>
        <h3>Вакансии не найдены</h3>
        <p>Попробуйте изменить параметры поиска</p>
    </section>
    {{end}}
</div>
</body>
</html>
`
