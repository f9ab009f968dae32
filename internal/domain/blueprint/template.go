package blueprint

import "strings"

// DefaultTitle is the project name used when the idea is empty.
const DefaultTitle = "Your Dream Project"

// maxTitleRunes caps the project name embedded in the template title.
const maxTitleRunes = 50

// demoTemplate is the deterministic blueprint document. The only
// substitution point is {project_name}.
const demoTemplate = `# Project Blueprint: {project_name}

## Tech Stack
- **Frontend**: React 19 + TypeScript + Tailwind CSS
- **Backend**: Next.js 15 App Router + tRPC
- **Database**: PostgreSQL with Drizzle ORM
- **Authentication**: NextAuth.js with OAuth providers
- **AI Integration**: OpenAI API / Anthropic Claude
- **Deployment**: Vercel (Frontend) + Railway (Backend)

## Architecture Overview
` + "```" + `
┌─────────────┐     ┌─────────────┐     ┌─────────────┐
│   Frontend  │────▶│   Backend   │────▶│  Database   │
│   (React)   │     │  (Next.js)  │     │ (PostgreSQL)│
└─────────────┘     └─────────────┘     └─────────────┘
       │                   │                   │
       └───────────────────┴───────────────────┘
                          │
                   ┌──────▼──────┐
                   │  AI Service │
                   │  (OpenAI)   │
                   └─────────────┘
` + "```" + `

## Key Files Structure
` + "```" + `
project-root/
├── app/
│   ├── layout.tsx
│   ├── page.tsx
│   └── api/
│       └── trpc/
│           └── [trpc]/
├── components/
│   ├── ui/
│   └── features/
├── server/
│   ├── routers/
│   └── db/
├── lib/
│   └── utils.ts
└── package.json
` + "```" + `

## Next Steps
1. Initialize Next.js project with TypeScript
2. Set up Drizzle ORM and database schema
3. Configure tRPC endpoints
4. Implement authentication flow
5. Build core features iteratively
`

// ProjectTitle derives the template's project name from a raw idea.
// The idea is trimmed; an empty result yields DefaultTitle, anything
// longer than 50 characters is cut at 50 with no ellipsis.
func ProjectTitle(idea string) string {
	name := strings.TrimSpace(idea)
	if name == "" {
		return DefaultTitle
	}
	runes := []rune(name)
	if len(runes) > maxTitleRunes {
		return string(runes[:maxTitleRunes])
	}
	return name
}

// RenderTemplate fills the deterministic template with the project name
// derived from idea.
func RenderTemplate(idea string) string {
	return strings.ReplaceAll(demoTemplate, "{project_name}", ProjectTitle(idea))
}
