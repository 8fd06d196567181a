package fallback

import (
	"strings"

	"github.com/mtruong/skillswap/internal/types"
)

// topicPlaceholder marks where the raw topic is substituted into templates.
const topicPlaceholder = "{{topic}}"

// Domain buckets topics that have no canonical catalog entry.
type Domain string

const (
	DomainTechnical Domain = "technical"
	DomainCreative  Domain = "creative"
	DomainBusiness  Domain = "business"
	DomainScience   Domain = "science"
	DomainGeneral   Domain = "general"
)

// domainOrder is the classification priority; first match wins.
var domainOrder = []Domain{DomainTechnical, DomainCreative, DomainBusiness, DomainScience}

var domainKeywords = map[Domain][]string{
	DomainTechnical: {
		"program", "coding", "software", "computer", "developer", "web",
		"data", "cloud", "devops", "linux", "api", "machine learning",
		"algorithm", "security", "network", "mobile", "app",
	},
	DomainCreative: {
		"art", "music", "design", "draw", "paint", "photo", "writing",
		"craft", "dance", "sing", "film", "sketch", "pottery", "knit",
	},
	DomainBusiness: {
		"business", "marketing", "finance", "sales", "management",
		"entrepreneur", "accounting", "negotiation", "leadership", "startup",
		"investing", "economics",
	},
	DomainScience: {
		"science", "physics", "chemistry", "biology", "math", "astronomy",
		"statistics", "geology", "medicine", "anatomy",
	},
}

// classifyDomain buckets a topic by scanning keyword lists in priority
// order; the first list with a substring hit wins, default general.
func classifyDomain(topic string) Domain {
	topic = normalize(topic)
	for _, domain := range domainOrder {
		for _, kw := range domainKeywords[domain] {
			if strings.Contains(topic, kw) {
				return domain
			}
		}
	}
	return DomainGeneral
}

// questionPools holds template questions per domain. Pools are larger than
// the quiz size so the shuffled selection varies between calls.
var questionPools = map[Domain][]types.QuizQuestion{
	DomainTechnical: {
		{
			Question: "When starting to learn {{topic}}, which habit pays off most?",
			Options: []string{
				"Building small working projects early",
				"Memorizing documentation cover to cover",
				"Buying the most expensive tools first",
				"Waiting until you understand everything in theory",
			},
			CorrectAnswerIndex: 0,
			Explanation:        "Hands-on projects surface gaps that reading alone hides.",
		},
		{
			Question: "What is the best response to an error message while practicing {{topic}}?",
			Options: []string{
				"Restart the machine",
				"Read it carefully and search for the exact text",
				"Ignore it and try random changes",
				"Give up on the exercise",
			},
			CorrectAnswerIndex: 1,
			Explanation:        "Error messages usually name the failing part directly.",
		},
		{
			Question: "Why is version control useful when learning {{topic}}?",
			Options: []string{
				"It makes code run faster",
				"It replaces the need for testing",
				"It lets you experiment and roll back safely",
				"It is only needed on large teams",
			},
			CorrectAnswerIndex: 2,
		},
		{
			Question: "Which practice keeps {{topic}} skills from fading?",
			Options: []string{
				"Reviewing notes once a year",
				"Regular short practice sessions",
				"Only practicing before interviews",
				"Watching videos without coding along",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "What does breaking a problem into smaller parts achieve in {{topic}}?",
			Options: []string{
				"It makes each piece testable and easier to reason about",
				"It always doubles the amount of code",
				"It is only useful for beginners",
				"It removes the need for planning",
			},
			CorrectAnswerIndex: 0,
		},
		{
			Question: "When is it worth reading other people's work in {{topic}}?",
			Options: []string{
				"Never, it causes bad habits",
				"Only after ten years of experience",
				"Early and often, to absorb idioms and patterns",
				"Only when something is broken",
			},
			CorrectAnswerIndex: 2,
		},
	},
	DomainCreative: {
		{
			Question: "What matters most in your first months of learning {{topic}}?",
			Options: []string{
				"Producing perfect finished pieces",
				"Consistent practice and finishing small works",
				"Owning professional-grade equipment",
				"Comparing yourself to experts daily",
			},
			CorrectAnswerIndex: 1,
			Explanation:        "Volume and consistency beat polish at the start.",
		},
		{
			Question: "How does studying the fundamentals help with {{topic}}?",
			Options: []string{
				"It limits creativity",
				"It is only for classical styles",
				"It gives you a vocabulary to break rules deliberately",
				"It replaces the need for practice",
			},
			CorrectAnswerIndex: 2,
		},
		{
			Question: "What is a healthy way to use feedback while learning {{topic}}?",
			Options: []string{
				"Ask for specific critique and apply one change at a time",
				"Only share work with people who will praise it",
				"Treat all criticism as a personal attack",
				"Never show unfinished work",
			},
			CorrectAnswerIndex: 0,
		},
		{
			Question: "Why keep your early attempts at {{topic}}?",
			Options: []string{
				"They might sell later",
				"They show your progress and what to revisit",
				"To avoid buying new materials",
				"There is no reason to keep them",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "What role does imitation play in learning {{topic}}?",
			Options: []string{
				"It is plagiarism and should be avoided",
				"Copying studies of masters builds technique before style",
				"It only works for digital media",
				"It replaces original work entirely",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "How long should a beginner practice {{topic}} per session?",
			Options: []string{
				"Eight hours, or nothing counts",
				"Short focused sessions, stopping before frustration",
				"Only when inspiration strikes",
				"Once a month in a marathon",
			},
			CorrectAnswerIndex: 1,
		},
	},
	DomainBusiness: {
		{
			Question: "What is the first step in applying {{topic}} to a real venture?",
			Options: []string{
				"Hiring a large team",
				"Understanding the customer problem you solve",
				"Designing a logo",
				"Raising as much money as possible",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "Why track metrics when practicing {{topic}}?",
			Options: []string{
				"Numbers impress investors regardless of meaning",
				"Metrics replace the need for judgment",
				"You can only improve what you can measure",
				"Tracking is legally required",
			},
			CorrectAnswerIndex: 2,
		},
		{
			Question: "What does a minimum viable approach mean in {{topic}}?",
			Options: []string{
				"The cheapest thing you can legally sell",
				"The smallest version that tests your riskiest assumption",
				"A product with minimal quality control",
				"A plan without any budget",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "How should a learner of {{topic}} treat failure?",
			Options: []string{
				"As data to adjust the next attempt",
				"As proof the field is not for them",
				"As something to hide from mentors",
				"As bad luck with no lessons",
			},
			CorrectAnswerIndex: 0,
		},
		{
			Question: "Which habit builds {{topic}} judgment fastest?",
			Options: []string{
				"Reading case studies and writing down the decision points",
				"Following one guru exclusively",
				"Avoiding all risk",
				"Delegating every decision",
			},
			CorrectAnswerIndex: 0,
		},
		{
			Question: "What makes networking useful while learning {{topic}}?",
			Options: []string{
				"Collecting as many contacts as possible",
				"Exchanging genuine value and learning from practitioners",
				"Only attending paid events",
				"Networking has no effect on learning",
			},
			CorrectAnswerIndex: 1,
		},
	},
	DomainScience: {
		{
			Question: "What distinguishes scientific study of {{topic}} from casual reading?",
			Options: []string{
				"Memorizing more trivia",
				"Testing claims against evidence and tracking uncertainty",
				"Using longer words",
				"Trusting the first source found",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "Why work through problems by hand when learning {{topic}}?",
			Options: []string{
				"Calculators are unreliable",
				"It is a tradition without benefit",
				"Working steps yourself builds the intuition behind formulas",
				"Teachers require it",
			},
			CorrectAnswerIndex: 2,
		},
		{
			Question: "What should you do when an experiment in {{topic}} contradicts your expectation?",
			Options: []string{
				"Discard the result",
				"Check the method, then update your model if it holds",
				"Repeat until you get the expected answer",
				"Avoid experiments in the future",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "How do units help when solving {{topic}} problems?",
			Options: []string{
				"They are decoration for final answers",
				"Carrying units through catches errors in the setup",
				"They only matter in exams",
				"They slow down calculation",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "Why learn the history of {{topic}}?",
			Options: []string{
				"Old theories are always wrong",
				"It shows how ideas were tested, refined, and replaced",
				"It is required for certification",
				"History has no place in science",
			},
			CorrectAnswerIndex: 1,
		},
	},
	DomainGeneral: {
		{
			Question: "What is the most reliable way to make progress in {{topic}}?",
			Options: []string{
				"Regular deliberate practice with feedback",
				"Waiting for natural talent to appear",
				"Buying courses without finishing them",
				"Practicing only what is already easy",
			},
			CorrectAnswerIndex: 0,
			Explanation:        "Deliberate practice targets weaknesses; repetition alone does not.",
		},
		{
			Question: "How should you set goals when starting {{topic}}?",
			Options: []string{
				"One giant goal with no milestones",
				"Small measurable milestones that build on each other",
				"No goals, just vibes",
				"Goals copied from an expert's routine",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "What is a good use of a mentor while learning {{topic}}?",
			Options: []string{
				"Having them do the hard parts for you",
				"Getting targeted feedback and shortcuts past common mistakes",
				"Outsourcing your motivation entirely",
				"Only contacting them when stuck for weeks",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "Why teach {{topic}} to someone else once you know a little?",
			Options: []string{
				"To earn money immediately",
				"Explaining exposes gaps in your own understanding",
				"It is the only way to practice",
				"Teaching is easier than learning",
			},
			CorrectAnswerIndex: 1,
		},
		{
			Question: "What should you do after a plateau in {{topic}}?",
			Options: []string{
				"Quit, plateaus are permanent",
				"Keep the exact same routine indefinitely",
				"Vary the practice method and revisit fundamentals",
				"Practice twice as long without changing anything",
			},
			CorrectAnswerIndex: 2,
		},
		{
			Question: "How often should a beginner review the basics of {{topic}}?",
			Options: []string{
				"Never, basics are for day one only",
				"Periodically, since fundamentals compound",
				"Only before tests",
				"Once per decade",
			},
			CorrectAnswerIndex: 1,
		},
	},
}

// domainSkills are the default suggestion lists for unmatched topics.
var domainSkills = map[Domain][]types.SkillSuggestion{
	DomainTechnical: {
		{Name: "Python", Category: "Programming", Reason: "Gentle syntax and a huge ecosystem make it the standard first language.", Difficulty: "beginner"},
		{Name: "Git", Category: "Tools", Reason: "Every technical collaboration runs through version control.", Difficulty: "beginner"},
		{Name: "SQL", Category: "Data", Reason: "Querying data is useful in nearly every technical role.", Difficulty: "beginner"},
		{Name: "Linux Basics", Category: "Systems", Reason: "Comfort on the command line multiplies every other technical skill.", Difficulty: "intermediate"},
		{Name: "Web Fundamentals", Category: "Web", Reason: "HTML, CSS and HTTP underpin most software people actually use.", Difficulty: "beginner"},
	},
	DomainCreative: {
		{Name: "Drawing Fundamentals", Category: "Visual Arts", Reason: "Line, form and value transfer to every visual medium.", Difficulty: "beginner"},
		{Name: "Photography", Category: "Visual Arts", Reason: "Composition skills with instant feedback from every shot.", Difficulty: "beginner"},
		{Name: "Creative Writing", Category: "Writing", Reason: "Storytelling strengthens communication in any field.", Difficulty: "beginner"},
		{Name: "Music Theory", Category: "Music", Reason: "A shared language for playing with and learning from others.", Difficulty: "intermediate"},
		{Name: "Graphic Design", Category: "Design", Reason: "Visual communication is in demand for swaps on this platform.", Difficulty: "intermediate"},
	},
	DomainBusiness: {
		{Name: "Public Speaking", Category: "Communication", Reason: "Presenting clearly raises the value of everything else you know.", Difficulty: "beginner"},
		{Name: "Personal Finance", Category: "Finance", Reason: "Budgeting and investing basics compound for life.", Difficulty: "beginner"},
		{Name: "Digital Marketing", Category: "Marketing", Reason: "Reaching an audience online is a trade many members want.", Difficulty: "intermediate"},
		{Name: "Negotiation", Category: "Communication", Reason: "Useful daily, and a popular teaching request.", Difficulty: "intermediate"},
		{Name: "Project Management", Category: "Management", Reason: "Organizing work is valued across every industry.", Difficulty: "intermediate"},
	},
	DomainScience: {
		{Name: "Statistics", Category: "Mathematics", Reason: "The toolkit for judging claims and data in any field.", Difficulty: "intermediate"},
		{Name: "Astronomy", Category: "Science", Reason: "An approachable entry into physics with nothing but the night sky.", Difficulty: "beginner"},
		{Name: "Chemistry Basics", Category: "Science", Reason: "Explains the everyday world from cooking to cleaning.", Difficulty: "beginner"},
		{Name: "Scientific Writing", Category: "Writing", Reason: "Communicating results precisely is a skill of its own.", Difficulty: "intermediate"},
		{Name: "Data Analysis", Category: "Data", Reason: "Turning measurements into conclusions, with tools members teach here.", Difficulty: "intermediate"},
	},
	DomainGeneral: {
		{Name: "Spanish", Category: "Languages", Reason: "One of the most taught and requested languages on the platform.", Difficulty: "beginner"},
		{Name: "Cooking", Category: "Lifestyle", Reason: "A daily-use skill that is easy to swap lessons for.", Difficulty: "beginner"},
		{Name: "Touch Typing", Category: "Productivity", Reason: "A small investment that speeds up everything at a keyboard.", Difficulty: "beginner"},
		{Name: "First Aid", Category: "Lifestyle", Reason: "Practical, certifiable, and always in demand.", Difficulty: "beginner"},
		{Name: "Speed Reading", Category: "Productivity", Reason: "Accelerates every other learning goal you have.", Difficulty: "intermediate"},
	},
}

// genericRoadmapSteps is the template roadmap for topics without a
// canonical entry. Resources deliberately have no URLs; the enrichment
// pass never runs on synthesized steps.
var genericRoadmapSteps = []types.RoadmapStep{
	{
		Title:       "Survey the landscape of {{topic}}",
		Description: "Spend the first week mapping what {{topic}} involves: core sub-skills, common beginner mistakes, and what practitioners actually do day to day.",
		Duration:    "1 week",
		Resources: []types.RoadmapResource{
			{Title: "Beginner's overview of {{topic}}", Type: "article"},
			{Title: "Introductory {{topic}} video course", Type: "video"},
			{Title: "Community forum for {{topic}} learners", Type: "community"},
		},
	},
	{
		Title:       "Learn the fundamentals",
		Description: "Work through a structured introduction to {{topic}}, practicing each concept before moving on rather than binge-consuming material.",
		Duration:    "2-3 weeks",
		Resources: []types.RoadmapResource{
			{Title: "Foundational {{topic}} textbook or course", Type: "course"},
			{Title: "Practice exercises for {{topic}} basics", Type: "exercise"},
			{Title: "Glossary of {{topic}} terminology", Type: "reference"},
		},
	},
	{
		Title:       "Complete a first small project",
		Description: "Pick a modest, finishable project that uses the fundamentals of {{topic}} end to end. Finishing matters more than polish.",
		Duration:    "2 weeks",
		Resources: []types.RoadmapResource{
			{Title: "Starter project ideas for {{topic}}", Type: "article"},
			{Title: "Step-by-step {{topic}} project walkthrough", Type: "tutorial"},
			{Title: "Showcase of beginner {{topic}} projects", Type: "community"},
		},
	},
	{
		Title:       "Get feedback and fix weak spots",
		Description: "Share your work with a SkillSwap partner or mentor, collect specific critique, and drill the two or three weakest areas it reveals.",
		Duration:    "2 weeks",
		Resources: []types.RoadmapResource{
			{Title: "Finding a {{topic}} mentor or swap partner", Type: "community"},
			{Title: "Deliberate practice techniques", Type: "article"},
			{Title: "Targeted drills for common {{topic}} weaknesses", Type: "exercise"},
		},
	},
	{
		Title:       "Build depth and start teaching",
		Description: "Take on a more ambitious {{topic}} project and teach the basics to another member; explaining the material consolidates it.",
		Duration:    "4 weeks",
		Resources: []types.RoadmapResource{
			{Title: "Intermediate {{topic}} course", Type: "course"},
			{Title: "Guide to teaching {{topic}} to beginners", Type: "article"},
			{Title: "Advanced {{topic}} community and critique groups", Type: "community"},
		},
	},
}
