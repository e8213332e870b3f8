package mcpserver

// FormatContract describes the layout of a daily log so that LLM consumers
// know what the tools read and write.
const FormatContract = `# Daily Log Format

One Markdown file per calendar day, named ` + "`YYYY-MM-DD-daily.md`" + `, all in a
single dailies directory.

## Structure

` + "```" + `markdown
---
type: daily
date: 2026-01-26
---

## ✅ Done
- Fixed the deploy script #tags: cicd,aws

## ▶️ To Do
- Review PR

## 🚧 Blockers

## 🗓 Meetings
- Sprint planning

## 🧠 Quick Notes
` + "```" + `

## Rules

1. **Frontmatter** holds ` + "`type: daily`" + ` and the file's date.
2. **Sections** appear in the order above. Section keys for ` + "`log_entry`" + ` are
   ` + "`did`" + ` (Done), ` + "`plan`" + ` (To Do), ` + "`block`" + ` (Blockers), ` + "`meeting`" + ` (Meetings)
   and ` + "`notes`" + ` (Quick Notes).
3. **Bullets** are lines starting with ` + "`- `" + `. New bullets go after the last
   non-blank line of their section.
4. **Tags** trail the bullet text as ` + "` #tags: a,b`" + `. Tag filters match any
   listed tag, case-insensitively.
5. **Cheat sheets** list Done, Meetings, To Do, Blockers, Quick Notes, and by
   default cover the previous workday (Friday when today is Saturday, Sunday
   or Monday).
`
