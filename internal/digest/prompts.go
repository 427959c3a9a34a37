package digest

const (
	summaryHeading    = "* Summary"
	transcriptHeading = "* Formatted Transcript"

	summaryPlaceholder = "[Error generating summary]"
)

const summaryPrompt = `You are an expert content analyst. Write a comprehensive, highly detailed summary of the video transcript below.

Requirements:
- Open with a short executive summary (2-4 sentences) capturing what the video is about
- Then cover the FULL content in the order it appears (or grouped by theme where that reads better)
- Do not omit technical details, numbers, named tools, or concrete examples
- Close with a "Key Takeaways" section listing the most important points
- Output plain text with org-mode style headings (lines starting with **), no preamble like "Here is the summary:"

Transcript:
---
%s
---`

const formatPrompt = `Take the following raw spoken-word transcript segment and rewrite it as clean, readable prose.

Requirements:
- Fix punctuation, casing and sentence boundaries; break into paragraphs
- Remove filler words and false starts only
- Do NOT summarize, do NOT omit sentences, do NOT add commentary
- Preserve every statement and all details from the segment
- Output only the cleaned text, nothing else

Transcript segment:
---
%s
---`
