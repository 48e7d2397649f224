package analyzer

import (
	"fmt"
	"regexp"
)

var (
	mailQuotePattern      = regexp.MustCompile(`^\s*(>+|\||:)`)
	mailMessageStart      = regexp.MustCompile(`^(From|Newsgroups):\s`)
	mailHeaderToken       = regexp.MustCompile(`^[A-Za-z][A-Za-z-]*:\s`)
)

// passMail implements spec.md §4.3 Pass 3. It recognizes quoted lines,
// message-starting From:/Newsgroups: headers, and the header continuation
// lines that follow them.
func (a *Analyzer) passMail(lines []Line) {
	for i := range lines {
		text := lines[i].Source.Text

		prevQuoted := a.prevLine.MailQuote
		prevHeader := a.prevLine.MailHeader
		if i > 0 {
			prevQuoted = lines[i-1].Action.MailQuote
			prevHeader = lines[i-1].Action.MailHeader
		}

		switch {
		case mailQuotePattern.MatchString(text):
			if !prevQuoted {
				lines[i].HTML = a.openTag("p") + lines[i].HTML
				lines[i].Action.Par = true
			}
			lines[i].HTML += a.openTag("br")
			lines[i].Action.MailQuote = true

		case mailMessageStart.MatchString(text):
			a.messageSeq++
			anchorTag := a.caseName("a")
			anchor := fmt.Sprintf(`<%s name="msg_%d"></%s>`, anchorTag, a.messageSeq, anchorTag)
			lines[i].HTML = "<!-- New Message -->" + a.openTag("p") + anchor + lines[i].HTML + a.openTag("br")
			lines[i].Action.Par = true
			lines[i].Action.MailHeader = true

		case prevHeader && (mailHeaderToken.MatchString(text) || lines[i].Source.Indent > 0):
			lines[i].Action.MailHeader = true
		}
	}
}
