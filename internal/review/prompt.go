package review

import "fmt"

// maxPromptChars caps the file content embedded in a prompt, measured
// in characters rather than bytes.
const maxPromptChars = 4000

// truncationNotice always follows the embedded content, whether or not
// the cap was hit.
const truncationNotice = "... (truncated if longer)"

const promptTemplate = `You are an expert code reviewer. Analyze the following code file and provide constructive feedback.

File: %s
Content:
%s` + truncationNotice + `

Please provide:
1. **Overall Assessment**: Brief summary of code quality
2. **Strengths**: What the code does well
3. **Issues**: Specific problems or improvements needed
4. **Security Concerns**: Any security vulnerabilities
5. **Best Practices**: Suggestions for following coding best practices
6. **Severity**: Rate as LOW/MEDIUM/HIGH/CRITICAL

Format your response in clear sections with emojis for readability.
Be specific and actionable in your feedback.`

// BuildPrompt constructs the review prompt for one file.
func BuildPrompt(path, content string) string {
	return fmt.Sprintf(promptTemplate, path, truncate(content))
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxPromptChars {
		return s
	}
	return string(runes[:maxPromptChars])
}
