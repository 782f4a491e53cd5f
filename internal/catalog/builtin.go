package catalog

import (
	"context"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
)

var builtinJobs = []models.Job{
	{
		ID:          1,
		Title:       "Senior Java Developer",
		Company:     "Яндекс",
		Location:    "Москва, Россия",
		Salary:      "300 000 - 450 000 ₽",
		Experience:  "5+ лет",
		Description: "Разработка высоконагруженных микросервисов на Java",
		Tags:        []string{"Spring Boot", "Kafka", "PostgreSQL", "Docker"},
		Distance:    "2.3 км",
	},
	{
		ID:          2,
		Title:       "Middle Java Developer",
		Company:     "Сбер",
		Location:    "Москва, Россия",
		Salary:      "200 000 - 300 000 ₽",
		Experience:  "3-5 лет",
		Description: "Разработка банковских сервисов",
		Tags:        []string{"Spring", "Hibernate", "Oracle", "Kubernetes"},
		Distance:    "5.1 км",
	},
	{
		ID:          3,
		Title:       "Java Team Lead",
		Company:     "VK",
		Location:    "Санкт-Петербург, Россия",
		Salary:      "350 000 - 500 000 ₽",
		Experience:  "7+ лет",
		Description: "Управление командой разработки",
		Tags:        []string{"Java", "Architecture", "Management", "Microservices"},
		Distance:    "650 км",
	},
	{
		ID:          4,
		Title:       "Junior Java Developer",
		Company:     "Ozon",
		Location:    "Москва, Россия",
		Salary:      "100 000 - 150 000 ₽",
		Experience:  "0-1 год",
		Description: "Разработка e-commerce платформы",
		Tags:        []string{"Java", "Spring", "REST API", "Git"},
		Distance:    "3.7 км",
	},
}

// Builtin returns the source for the postings compiled into the binary.
func Builtin() Source { return builtinSource{} }

type builtinSource struct{}

func (builtinSource) Name() string { return "builtin" }

func (builtinSource) Load(ctx context.Context) ([]models.Job, error) {
	return Seed(), nil
}

// Seed returns a deep copy of the compiled-in postings.
func Seed() []models.Job {
	jobs := make([]models.Job, len(builtinJobs))
	for i, job := range builtinJobs {
		job.Tags = append([]string(nil), job.Tags...)
		jobs[i] = job
	}
	return jobs
}
