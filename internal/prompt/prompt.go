// Package prompt assembles the instruction text sent to the model. Level,
// style and language each contribute one independent clause, so the eight
// prompt variants compose from three decision points instead of eight
// hand-written templates.
package prompt

import (
	"strings"

	"queryx/internal/model"
)

const preamble = "You are QueryX, a PCMB question solver for JEE/NEET.\n\n" +
	"GOAL:\n" +
	"- Provide only the final answer in clean markdown.\n" +
	"- Do NOT output JSON, and do NOT output code fences.\n" +
	"- Use LaTeX for all mathematical expressions.\n" +
	"  Inline examples: $F = ma$, $Q_{enc}$, $\\vec{E} \\cdot d\\vec{A}$.\n" +
	"  Block examples:\n\n" +
	"    $$ \\oint_S \\vec{E} \\cdot dA = \\frac{Q_{enc}}{\\varepsilon_0} $$\n" +
	"    $$ V(r) = \\frac{1}{4\\pi\\varepsilon_0} \\frac{q}{r} $$\n\n"

const strictRules = "STRICT LATEX RULES:\n" +
	"- Always use $ ... $ for inline LaTeX.\n" +
	"- Always use $$ ... $$ for block LaTeX on separate lines.\n" +
	"- No HTML tags inside equations.\n" +
	"- No unicode subscripts (Q₀). Use LaTeX subscripts (Q_0).\n" +
	"- Never wrap LaTeX inside backticks.\n"

const answerFormat = "\n\nAnswer format instructions (follow strictly):\n" +
	"- Use markdown paragraphs + bullet / numbered lists.\n" +
	"- All maths strictly in LaTeX.\n" +
	"- Inline examples: $F = ma$, $T = 2\\pi\\sqrt{L/g}$.\n" +
	"- Block examples:\n" +
	"    $$ W = \\int_{x_1}^{x_2} F(x) \\, dx $$\n" +
	"    $$ a(t) = \\frac{dv}{dt}, \\quad v(t) = \\frac{dx}{dt} $$\n" +
	"- Do NOT output triple backticks.\n" +
	"- Do NOT output JSON.\n\n" +
	"Now give the final answer:\n"

func levelClause(level model.Level) string {
	if level == model.LevelAdvanced {
		return "Explain with JEE/NEET exam depth, derivations, multiple cases " +
			"and mention important limiting cases / approximations where useful."
	}
	return "Explain conceptually for class 11–12 level without unnecessary complications. " +
		"Use simple language and only the formulas actually needed."
}

func styleClause(style model.Style) string {
	if style == model.StyleShort {
		return "Give a SHORT, exam-ready answer ONLY:\n" +
			"- Maximum 4–6 lines OR up to 5 bullet points.\n" +
			"- NO extra examples, stories, or side comments.\n" +
			"- ONLY the key concept, main formula, and final result.\n" +
			"- Target length ≈ 80–150 words total.\n" +
			"- Do NOT add headings; sirf chhota crisp explanation do."
	}
	return "Give a DETAILED, step-by-step solution:\n" +
		"- Use clear headings like 'Concept', 'Given', 'Solution', 'Result'.\n" +
		"- Use numbered steps for derivation and reasoning.\n" +
		"- Length around 300–600 words (ya 6–12 bullet/steps).\n" +
		"- Include 1–2 short examples or comments if helpful."
}

func languageClause(language model.Language) string {
	if language == model.LanguageEnglish {
		return "Write explanation in clear English. Equations in LaTeX."
	}
	return "Write using mixed Hindi + English (Hinglish) in Roman script. " +
		"Sentences Hinglish me ho, lekin equations LaTeX me likho."
}

// SystemPrompt builds the instruction preamble for the given options. It is a
// pure function: identical inputs yield byte-identical output.
func SystemPrompt(level model.Level, style model.Style, language model.Language) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("STYLE RULES (VERY IMPORTANT):\n")
	b.WriteString("- " + levelClause(level) + "\n")
	b.WriteString("- " + styleClause(style) + "\n")
	b.WriteString("- " + languageClause(language) + "\n")
	b.WriteString("- Do not mention internal reasoning.\n")
	b.WriteString("- Do not mention that you are an AI model.\n")
	b.WriteString("- Final answer must be clean and formatted.\n\n")
	b.WriteString(strictRules)
	return b.String()
}

// FullPrompt is the exact text sent to the model for text questions: system
// prompt, the trimmed question, and the trailing format instructions.
func FullPrompt(systemPrompt, question string) string {
	return systemPrompt +
		"\n\nQuestion:\n" +
		strings.TrimSpace(question) +
		answerFormat
}

// ImageInstruction is appended to the system prompt for image questions.
const ImageInstruction = "\nRewrite the question clearly from the image. Then solve step-by-step.\n"
