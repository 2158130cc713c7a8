package scan

import (
	"fmt"
	"strings"

	"github.com/pedroganco/sanum/internal/domain"
)

const analystFramework = `# SOCIAL MEDIA REVIEW FRAMEWORK

Score each platform on these weighted categories:
1. Messaging and positioning (20%): who they serve, the problem they solve, what sets them apart, same core message everywhere.
2. Tone of voice (10%): consistent across platforms and fitting for the industry.
3. Visual consistency (15%): same colours, logo and profile imagery; current banners; cohesive feed.
4. Content strategy (20%): posting frequency, a mix of educational, engaging, promotional and behind-the-scenes posts, varied formats, replies to comments, clear calls to action.
5. Platform best practices (15%): complete bios and business info, highlights, native formats for each network.
6. Website and social integration (10%): social links on the site, aligned messaging, social proof.
7. Deductions: inactive for 30+ days (-10 per platform), inconsistent branding (-5 to -10), ignored comments (-8), broken links (-5 each), suspicious follower counts (-15), unanswered negative reviews (-8).

Voice: talk like a smart friend over coffee. Direct and honest, never harsh. Say "you". No buzzwords, no fake enthusiasm, short sentences.

Findings are checkmarks, not paragraphs: up to 3 things done well, up to 3 things to fix, 1-2 things to reflect on, and exactly one quick win doable this week.`

// BuildAnalysisPrompt assembles the social presence review prompt for req.
func BuildAnalysisPrompt(req *domain.SocialAnalysisRequest) string {
	var b strings.Builder

	b.WriteString(analystFramework)
	b.WriteString("\n\nYou are a social media analyst. Review this business's social presence with the framework above.\n\n")
	fmt.Fprintf(&b, "**Business:** %s\n", req.BusinessName)
	fmt.Fprintf(&b, "**Website:** %s\n", req.URL)

	if w := req.WebsiteData; w != nil {
		colors := strings.Join(w.DominantColors, ", ")
		b.WriteString("\n**Website Analysis:**\n")
		fmt.Fprintf(&b, "- Hero text: %q\n", orDefault(w.HeroText, "Not found"))
		fmt.Fprintf(&b, "- Tagline: %q\n", orDefault(w.Tagline, "Not found"))
		fmt.Fprintf(&b, "- Meta description: %q\n", orDefault(w.MetaDescription, "Not found"))
		fmt.Fprintf(&b, "- Detected tone: %s\n", orDefault(string(w.DetectedTone), "Unknown"))
		fmt.Fprintf(&b, "- Dominant colors: %s\n", orDefault(colors, "Not detected"))
	}

	if req.Excerpt != "" {
		fmt.Fprintf(&b, "\n**Homepage excerpt:**\n%s\n", req.Excerpt)
	}

	aligned := req.UserGoal != "" || req.UserAudience != ""
	if aligned {
		b.WriteString("\n**Context from the owner (check alignment against it):**\n")
		if req.UserGoal != "" {
			fmt.Fprintf(&b, "- Goal: %q\n", req.UserGoal)
		}
		if req.UserAudience != "" {
			fmt.Fprintf(&b, "- Target audience: %q\n", req.UserAudience)
		}
	}

	b.WriteString("\n**Social Media Accounts Found:**\n")
	for _, p := range req.Platforms {
		fmt.Fprintf(&b, "- %s: %s\n", p.Platform, p.URL)
	}

	b.WriteString(`
**Your task:**
1. Positioning: in 1-2 sentences, what the business does, who it serves and which pain it solves.
2. Tone of voice: Professional, Casual/Friendly, Playful, Authoritative, Empathetic, Luxury or similar. Note consistency across platforms.
3. Visual consistency, using the website colours as reference: Consistent, Mostly Consistent or Inconsistent.
4. For every platform: score 0-100, a realistic metrics estimate (followers, posts, engagement, last post, frequency), checkmarks and one quick win.
5. Overall: weighted score and a 1-2 sentence insight.
`)
	if aligned {
		b.WriteString("6. Alignment: does what you see match the owner's goal and audience? Give an alignment score 0-100 and a 1-2 sentence insight.\n")
	}

	b.WriteString(`
Be realistic for a small business: posting is usually irregular, engagement low, bios incomplete and branding uneven. Typical scores sit between 30 and 60.

Respond ONLY with valid JSON in this format:
{
  "detectedPositioning": "One sentence",
  "detectedTone": "Professional",
  "visualConsistency": "Mostly Consistent",
  "platforms": [
    {
      "name": "Instagram",
      "url": "https://...",
      "handle": "username",
      "score": 45,
      "metrics": {"followers": "~500", "posts": "~30", "engagement": "Low (<1%)", "lastPost": "2 months ago", "frequency": "1-2x/month"},
      "checkmarks": {"good": ["..."], "bad": ["..."], "reflect": ["..."]},
      "quickWin": "..."
    }
  ],
  "overallScore": 52,
  "overallInsight": "..."`)
	if aligned {
		b.WriteString(`,
  "alignmentScore": 65,
  "alignmentInsight": "..."`)
	}
	b.WriteString("\n}\n")

	return b.String()
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
