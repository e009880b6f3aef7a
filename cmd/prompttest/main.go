package main

// Print the analysis prompt generated for a resume text file:
//   go run ./cmd/prompttest [path]

import (
	"fmt"
	"log"
	"os"

	"resume-insight/internal/llm"
	"resume-insight/internal/resumes"
)

const sampleResume = `Jane Smith
jane.smith@example.com | (555) 010-7788 | linkedin.com/in/janesmith

Summary
Backend engineer with 6 years of experience building payment systems.

Experience
Senior Software Engineer, Acme Corp (Jan 2020 - Present)
- Led migration of the billing pipeline to event-driven architecture.

Education
B.S. Computer Science, State University, 2017

Skills
Go, PostgreSQL, Kubernetes, Communication
`

func main() {
	text := sampleResume
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("read %s: %v", os.Args[1], err)
		}
		text = string(data)
	}

	fmt.Println(llm.BuildAnalysisPrompt(resumes.SchemaJSON(), text))
}
