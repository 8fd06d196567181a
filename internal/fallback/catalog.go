package fallback

import "github.com/mtruong/skillswap/internal/types"

// entry is the precomputed content bundle for one canonical skill key.
type entry struct {
	aliases []string
	skills  []types.SkillSuggestion
	roadmap *types.Roadmap
	quiz    []types.QuizQuestion
}

// catalogOrder fixes iteration order so alias-length ties resolve the same
// way on every call.
var catalogOrder = []string{"java", "javascript", "python", "react", "sql", "guitar"}

var catalog = map[string]entry{
	"java": {
		aliases: []string{"java", "jvm", "spring boot", "kotlin"},
		skills: []types.SkillSuggestion{
			{Name: "Spring Boot", Category: "Frameworks", Reason: "The dominant way Java is used in industry backends.", Difficulty: "intermediate"},
			{Name: "SQL", Category: "Data", Reason: "Nearly every Java service sits in front of a relational database.", Difficulty: "beginner"},
			{Name: "Maven & Gradle", Category: "Tools", Reason: "Build tooling you will touch on day one of any Java project.", Difficulty: "beginner"},
			{Name: "JUnit Testing", Category: "Testing", Reason: "Test-first habits are expected in Java codebases.", Difficulty: "beginner"},
			{Name: "Kotlin", Category: "Programming", Reason: "A natural next language that runs on the same platform.", Difficulty: "intermediate"},
		},
		roadmap: &types.Roadmap{
			Skill: "java",
			Steps: []types.RoadmapStep{
				{Order: 1, Title: "Syntax and the JVM", Description: "Install the JDK, learn variables, control flow, and how compilation to bytecode works.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Oracle Java Tutorials", Type: "documentation", URL: "https://docs.oracle.com/javase/tutorial/"},
					{Title: "Java Programming MOOC (University of Helsinki)", Type: "course", URL: "https://java-programming.mooc.fi/"},
					{Title: "Baeldung Java basics", Type: "article", URL: "https://www.baeldung.com/java-tutorial"},
				}},
				{Order: 2, Title: "Object-oriented design", Description: "Classes, interfaces, inheritance versus composition, and the collections framework.", Duration: "3 weeks", Resources: []types.RoadmapResource{
					{Title: "Head First Java", Type: "book"},
					{Title: "Collections framework guide", Type: "documentation", URL: "https://docs.oracle.com/javase/tutorial/collections/"},
					{Title: "OO design practice katas", Type: "exercise", URL: "https://exercism.org/tracks/java"},
				}},
				{Order: 3, Title: "Tooling and tests", Description: "Build with Maven or Gradle, write JUnit tests, and learn the debugger in a real IDE.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Maven getting started", Type: "documentation", URL: "https://maven.apache.org/guides/getting-started/"},
					{Title: "JUnit 5 user guide", Type: "documentation", URL: "https://junit.org/junit5/docs/current/user-guide/"},
					{Title: "IntelliJ IDEA debugging tutorial", Type: "video"},
				}},
				{Order: 4, Title: "Concurrency and I/O", Description: "Threads, executors, and reading and writing files and sockets without footguns.", Duration: "3 weeks", Resources: []types.RoadmapResource{
					{Title: "Java Concurrency in Practice", Type: "book"},
					{Title: "Concurrency tutorial", Type: "documentation", URL: "https://docs.oracle.com/javase/tutorial/essential/concurrency/"},
					{Title: "Concurrency exercises", Type: "exercise"},
				}},
				{Order: 5, Title: "A real service", Description: "Build and deploy a small Spring Boot REST service backed by a database.", Duration: "4 weeks", Resources: []types.RoadmapResource{
					{Title: "Spring Boot guides", Type: "tutorial", URL: "https://spring.io/guides"},
					{Title: "Building REST services with Spring", Type: "tutorial", URL: "https://spring.io/guides/tutorials/rest/"},
					{Title: "Spring Boot sample projects", Type: "community"},
				}},
			},
		},
		quiz: []types.QuizQuestion{
			{Question: "What does the JVM do?", Options: []string{"Compiles Java source directly to machine code ahead of time", "Executes compiled bytecode on any supported platform", "Manages project dependencies", "Formats source code"}, CorrectAnswerIndex: 1, Explanation: "The JVM interprets and JIT-compiles bytecode, which is what makes Java portable."},
			{Question: "Which keyword prevents a method from being overridden?", Options: []string{"static", "const", "final", "sealed"}, CorrectAnswerIndex: 2},
			{Question: "What is the difference between == and .equals() for objects?", Options: []string{"They are interchangeable", "== compares references, .equals() compares logical value", ".equals() compares references, == compares value", "== only works on primitives"}, CorrectAnswerIndex: 1},
			{Question: "Which collection preserves insertion order and allows index access?", Options: []string{"HashSet", "HashMap", "ArrayList", "PriorityQueue"}, CorrectAnswerIndex: 2},
			{Question: "What happens when an unchecked exception escapes main()?", Options: []string{"It is silently ignored", "The JVM prints a stack trace and the program exits", "The compiler rejects the program", "The garbage collector handles it"}, CorrectAnswerIndex: 1},
		},
	},
	"javascript": {
		aliases: []string{"javascript", "js", "node", "nodejs", "typescript", "es6"},
		skills: []types.SkillSuggestion{
			{Name: "TypeScript", Category: "Programming", Reason: "Static types are now the default expectation in JS codebases.", Difficulty: "intermediate"},
			{Name: "React", Category: "Frameworks", Reason: "The most requested front-end skill among members.", Difficulty: "intermediate"},
			{Name: "Node.js", Category: "Backend", Reason: "Reuse the same language on the server side.", Difficulty: "intermediate"},
			{Name: "CSS", Category: "Web", Reason: "JavaScript UIs still live or die by their styling.", Difficulty: "beginner"},
			{Name: "Testing with Jest", Category: "Testing", Reason: "Confidence to refactor, and a common interview topic.", Difficulty: "beginner"},
		},
		roadmap: &types.Roadmap{
			Skill: "javascript",
			Steps: []types.RoadmapStep{
				{Order: 1, Title: "Language core", Description: "Values, functions, closures, and the quirks of coercion. Write everything in the browser console first.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "MDN JavaScript Guide", Type: "documentation", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide"},
					{Title: "Eloquent JavaScript", Type: "book", URL: "https://eloquentjavascript.net/"},
					{Title: "javascript.info modern tutorial", Type: "tutorial", URL: "https://javascript.info/"},
				}},
				{Order: 2, Title: "The DOM and events", Description: "Select, create, and update elements; wire up listeners; build a small interactive page with no framework.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "MDN DOM introduction", Type: "documentation", URL: "https://developer.mozilla.org/en-US/docs/Web/API/Document_Object_Model/Introduction"},
					{Title: "Vanilla JS mini projects", Type: "exercise"},
					{Title: "Event handling deep dive", Type: "article"},
				}},
				{Order: 3, Title: "Asynchrony", Description: "Callbacks, promises, async/await, and fetch. Consume a public API and render the result.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "MDN async JavaScript", Type: "documentation", URL: "https://developer.mozilla.org/en-US/docs/Learn/JavaScript/Asynchronous"},
					{Title: "Promises explained visually", Type: "video"},
					{Title: "Public APIs list for practice", Type: "reference", URL: "https://github.com/public-apis/public-apis"},
				}},
				{Order: 4, Title: "Tooling and Node", Description: "npm, modules, bundlers, and writing a small CLI or HTTP server in Node.", Duration: "3 weeks", Resources: []types.RoadmapResource{
					{Title: "Node.js official guides", Type: "documentation", URL: "https://nodejs.org/en/learn"},
					{Title: "npm fundamentals", Type: "tutorial"},
					{Title: "Build a CLI tool walkthrough", Type: "tutorial"},
				}},
				{Order: 5, Title: "A framework and a project", Description: "Pick React or Vue and ship a complete small app with tests, deployed somewhere public.", Duration: "4 weeks", Resources: []types.RoadmapResource{
					{Title: "React official tutorial", Type: "tutorial", URL: "https://react.dev/learn"},
					{Title: "Jest getting started", Type: "documentation", URL: "https://jestjs.io/docs/getting-started"},
					{Title: "Free deployment platforms overview", Type: "article"},
				}},
			},
		},
		quiz: []types.QuizQuestion{
			{Question: "What does 'typeof null' evaluate to?", Options: []string{"\"null\"", "\"undefined\"", "\"object\"", "\"boolean\""}, CorrectAnswerIndex: 2, Explanation: "A historical bug that is now part of the language."},
			{Question: "Which declaration is block-scoped and cannot be reassigned?", Options: []string{"var", "let", "const", "function"}, CorrectAnswerIndex: 2},
			{Question: "What does a Promise represent?", Options: []string{"A value available now", "The eventual result of an asynchronous operation", "A synchronous loop", "A DOM element"}, CorrectAnswerIndex: 1},
			{Question: "What is a closure?", Options: []string{"A function bundled with its surrounding lexical scope", "A way to close browser tabs", "An object with no prototype", "A terminated event loop"}, CorrectAnswerIndex: 0},
			{Question: "Which method turns a JSON string into an object?", Options: []string{"JSON.stringify", "JSON.parse", "Object.assign", "Array.from"}, CorrectAnswerIndex: 1},
		},
	},
	"python": {
		aliases: []string{"python", "django", "flask", "pandas", "numpy"},
		skills: []types.SkillSuggestion{
			{Name: "Data Analysis with Pandas", Category: "Data", Reason: "The most common reason members pick up Python.", Difficulty: "intermediate"},
			{Name: "Django", Category: "Frameworks", Reason: "Batteries-included web apps with one framework.", Difficulty: "intermediate"},
			{Name: "SQL", Category: "Data", Reason: "Pairs with Python in virtually every data task.", Difficulty: "beginner"},
			{Name: "Automation & Scripting", Category: "Productivity", Reason: "Small scripts that save hours are the fastest payoff.", Difficulty: "beginner"},
			{Name: "Machine Learning Basics", Category: "Data", Reason: "A popular learning goal that builds directly on Python.", Difficulty: "advanced"},
		},
		roadmap: &types.Roadmap{
			Skill: "python",
			Steps: []types.RoadmapStep{
				{Order: 1, Title: "Core language", Description: "Syntax, data types, functions, and the REPL workflow.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Official Python tutorial", Type: "documentation", URL: "https://docs.python.org/3/tutorial/"},
					{Title: "Automate the Boring Stuff", Type: "book", URL: "https://automatetheboringstuff.com/"},
					{Title: "Python track on Exercism", Type: "exercise", URL: "https://exercism.org/tracks/python"},
				}},
				{Order: 2, Title: "Data structures and comprehensions", Description: "Lists, dicts, sets, tuples, slicing, and writing idiomatic comprehensions.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Python data structures docs", Type: "documentation", URL: "https://docs.python.org/3/tutorial/datastructures.html"},
					{Title: "Comprehension exercises", Type: "exercise"},
					{Title: "Real Python data structures guide", Type: "article"},
				}},
				{Order: 3, Title: "Modules, environments, packaging", Description: "Virtual environments, pip, project layout, and importing your own code.", Duration: "1 week", Resources: []types.RoadmapResource{
					{Title: "Python packaging user guide", Type: "documentation", URL: "https://packaging.python.org/"},
					{Title: "venv and pip explained", Type: "article"},
					{Title: "Project structure examples", Type: "reference"},
				}},
				{Order: 4, Title: "Files, errors, and tests", Description: "Read and write files, handle exceptions properly, and test with pytest.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "pytest documentation", Type: "documentation", URL: "https://docs.pytest.org/"},
					{Title: "Exception handling patterns", Type: "article"},
					{Title: "File handling exercises", Type: "exercise"},
				}},
				{Order: 5, Title: "Choose a track", Description: "Go deeper into web (Django/Flask), data (pandas), or automation, and ship a project.", Duration: "4 weeks", Resources: []types.RoadmapResource{
					{Title: "Django official tutorial", Type: "tutorial", URL: "https://docs.djangoproject.com/en/stable/intro/tutorial01/"},
					{Title: "pandas getting started", Type: "documentation", URL: "https://pandas.pydata.org/docs/getting_started/"},
					{Title: "Project ideas by track", Type: "article"},
				}},
				{Order: 6, Title: "Share and teach", Description: "Publish your project, write a README that teaches it, and offer a beginner session on SkillSwap.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Writing good READMEs", Type: "article"},
					{Title: "Publishing a package to PyPI", Type: "tutorial"},
					{Title: "SkillSwap teaching guide", Type: "community"},
				}},
			},
		},
		quiz: []types.QuizQuestion{
			{Question: "Which of these creates a list of squares from 0 to 4?", Options: []string{"[x^2 for x in range(5)]", "[x**2 for x in range(5)]", "{x**2 for x in range(5)}", "list(x*2 in range(5))"}, CorrectAnswerIndex: 1},
			{Question: "What is the result of 3 / 2 in Python 3?", Options: []string{"1", "1.5", "2", "TypeError"}, CorrectAnswerIndex: 1, Explanation: "True division always returns a float; use // for floor division."},
			{Question: "Which statement opens a file and guarantees it is closed?", Options: []string{"f = open(path)", "with open(path) as f:", "try: open(path)", "file.open(path)"}, CorrectAnswerIndex: 1},
			{Question: "What are *args and **kwargs for?", Options: []string{"Pointer arithmetic", "Collecting extra positional and keyword arguments", "Multiplying arguments", "Importing modules"}, CorrectAnswerIndex: 1},
			{Question: "Which built-in type is immutable?", Options: []string{"list", "dict", "set", "tuple"}, CorrectAnswerIndex: 3},
		},
	},
	"react": {
		aliases: []string{"react", "reactjs", "react.js", "jsx", "next.js", "nextjs"},
		skills: []types.SkillSuggestion{
			{Name: "JavaScript (deep dive)", Category: "Programming", Reason: "React problems are usually JavaScript problems underneath.", Difficulty: "intermediate"},
			{Name: "TypeScript", Category: "Programming", Reason: "The standard pairing for React codebases at work.", Difficulty: "intermediate"},
			{Name: "CSS", Category: "Web", Reason: "Component styling is half the daily job.", Difficulty: "beginner"},
			{Name: "Next.js", Category: "Frameworks", Reason: "The most common production React framework.", Difficulty: "intermediate"},
			{Name: "React Testing Library", Category: "Testing", Reason: "Testing components the way users interact with them.", Difficulty: "intermediate"},
		},
		roadmap: &types.Roadmap{
			Skill: "react",
			Steps: []types.RoadmapStep{
				{Order: 1, Title: "Components and JSX", Description: "Function components, props, and rendering lists. Build static UI before adding state.", Duration: "1 week", Resources: []types.RoadmapResource{
					{Title: "React quick start", Type: "documentation", URL: "https://react.dev/learn"},
					{Title: "Thinking in React", Type: "article", URL: "https://react.dev/learn/thinking-in-react"},
					{Title: "JSX pitfalls cheat sheet", Type: "reference"},
				}},
				{Order: 2, Title: "State and events", Description: "useState, controlled forms, and lifting state up. Build a multi-component interactive widget.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Managing state docs", Type: "documentation", URL: "https://react.dev/learn/managing-state"},
					{Title: "Forms in React tutorial", Type: "tutorial"},
					{Title: "State exercises", Type: "exercise"},
				}},
				{Order: 3, Title: "Effects and data fetching", Description: "useEffect, fetching from an API, loading and error states done properly.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Synchronizing with Effects", Type: "documentation", URL: "https://react.dev/learn/synchronizing-with-effects"},
					{Title: "Data fetching patterns", Type: "article"},
					{Title: "React Query introduction", Type: "video"},
				}},
				{Order: 4, Title: "Routing and structure", Description: "Client-side routing, project organization, and custom hooks for reuse.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "React Router tutorial", Type: "tutorial", URL: "https://reactrouter.com/en/main/start/tutorial"},
					{Title: "Custom hooks guide", Type: "documentation", URL: "https://react.dev/learn/reusing-logic-with-custom-hooks"},
					{Title: "Project structure conventions", Type: "article"},
				}},
				{Order: 5, Title: "Ship a complete app", Description: "Build, test, and deploy a full CRUD app with routing, API calls, and at least basic test coverage.", Duration: "4 weeks", Resources: []types.RoadmapResource{
					{Title: "React Testing Library docs", Type: "documentation", URL: "https://testing-library.com/docs/react-testing-library/intro/"},
					{Title: "Deploying React apps", Type: "tutorial"},
					{Title: "Portfolio project ideas", Type: "community"},
				}},
			},
		},
		quiz: []types.QuizQuestion{
			{Question: "What triggers a React component to re-render?", Options: []string{"Any function call inside it", "A change to its state or props", "A CSS update", "The browser resizing"}, CorrectAnswerIndex: 1},
			{Question: "Why do list items need a key prop?", Options: []string{"For CSS styling", "So React can match items across renders efficiently", "It is required syntax for JSX", "To make items focusable"}, CorrectAnswerIndex: 1},
			{Question: "Which hook stores local component state?", Options: []string{"useEffect", "useMemo", "useState", "useRef"}, CorrectAnswerIndex: 2},
			{Question: "What is 'lifting state up'?", Options: []string{"Storing state in localStorage", "Moving shared state to the closest common ancestor", "Using global variables", "Passing state to children"}, CorrectAnswerIndex: 1},
			{Question: "When does useEffect with an empty dependency array run?", Options: []string{"On every render", "Never", "Once after the first render", "Only on unmount"}, CorrectAnswerIndex: 2, Explanation: "An empty array means no dependency can change, so the effect runs once."},
		},
	},
	"sql": {
		aliases: []string{"sql", "postgres", "postgresql", "mysql", "database", "sqlite"},
		skills: []types.SkillSuggestion{
			{Name: "Database Design", Category: "Data", Reason: "Schemas and normalization are the other half of SQL fluency.", Difficulty: "intermediate"},
			{Name: "Python", Category: "Programming", Reason: "The most common language wrapped around SQL queries.", Difficulty: "beginner"},
			{Name: "Data Visualization", Category: "Data", Reason: "Turning query results into something decision-makers read.", Difficulty: "beginner"},
			{Name: "PostgreSQL Administration", Category: "Systems", Reason: "Operating the database, not just querying it.", Difficulty: "advanced"},
			{Name: "Spreadsheet Power Use", Category: "Productivity", Reason: "The on-ramp many analysts take before SQL, still useful after.", Difficulty: "beginner"},
		},
		roadmap: &types.Roadmap{
			Skill: "sql",
			Steps: []types.RoadmapStep{
				{Order: 1, Title: "SELECT fundamentals", Description: "Filtering, sorting, and projecting rows from a single table; practice on a sample dataset.", Duration: "1 week", Resources: []types.RoadmapResource{
					{Title: "SQLBolt interactive lessons", Type: "tutorial", URL: "https://sqlbolt.com/"},
					{Title: "PostgreSQL tutorial", Type: "documentation", URL: "https://www.postgresql.org/docs/current/tutorial.html"},
					{Title: "Sample databases to practice on", Type: "reference"},
				}},
				{Order: 2, Title: "Joins and relationships", Description: "Inner, left, and self joins; understand keys and why the data is split across tables.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Visual explanation of joins", Type: "article"},
					{Title: "Join exercises", Type: "exercise"},
					{Title: "Entity-relationship modeling intro", Type: "video"},
				}},
				{Order: 3, Title: "Aggregation and grouping", Description: "GROUP BY, HAVING, and the aggregate functions; answer real analytical questions.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Aggregate functions reference", Type: "documentation"},
					{Title: "Analytics question sets", Type: "exercise"},
					{Title: "Window functions primer", Type: "article"},
				}},
				{Order: 4, Title: "Writing data and schema design", Description: "INSERT, UPDATE, DELETE, transactions, constraints, and designing a small normalized schema.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Normalization explained", Type: "article"},
					{Title: "Transactions and ACID", Type: "documentation"},
					{Title: "Schema design practice project", Type: "exercise"},
				}},
				{Order: 5, Title: "Performance and a capstone", Description: "Indexes, EXPLAIN, and a capstone project analyzing a dataset you care about end to end.", Duration: "3 weeks", Resources: []types.RoadmapResource{
					{Title: "Use The Index, Luke", Type: "book", URL: "https://use-the-index-luke.com/"},
					{Title: "EXPLAIN output guide", Type: "documentation"},
					{Title: "Public datasets directory", Type: "reference"},
				}},
			},
		},
		quiz: []types.QuizQuestion{
			{Question: "Which clause filters rows before grouping?", Options: []string{"HAVING", "WHERE", "GROUP BY", "ORDER BY"}, CorrectAnswerIndex: 1, Explanation: "WHERE filters rows; HAVING filters groups after aggregation."},
			{Question: "What does a LEFT JOIN return?", Options: []string{"Only matching rows from both tables", "All rows from the left table plus matches from the right", "All rows from both tables", "Only rows missing from the right table"}, CorrectAnswerIndex: 1},
			{Question: "Which constraint guarantees a column's values are unique and non-null?", Options: []string{"FOREIGN KEY", "CHECK", "PRIMARY KEY", "DEFAULT"}, CorrectAnswerIndex: 2},
			{Question: "What does COUNT(*) count?", Options: []string{"Only non-null values in the first column", "Distinct values", "All rows in the group", "Columns in the table"}, CorrectAnswerIndex: 2},
			{Question: "Why add an index to a column?", Options: []string{"To enforce uniqueness automatically", "To speed up lookups that filter or join on it", "To compress the table", "To prevent deletes"}, CorrectAnswerIndex: 1},
		},
	},
	"guitar": {
		aliases: []string{"guitar", "acoustic guitar", "electric guitar", "bass guitar", "ukulele"},
		skills: []types.SkillSuggestion{
			{Name: "Music Theory", Category: "Music", Reason: "Understanding why chords work unlocks faster progress.", Difficulty: "intermediate"},
			{Name: "Singing", Category: "Music", Reason: "Accompanying yourself is the classic pairing.", Difficulty: "beginner"},
			{Name: "Songwriting", Category: "Music", Reason: "Turn technique into something of your own.", Difficulty: "intermediate"},
			{Name: "Piano Basics", Category: "Music", Reason: "A second instrument that makes theory visible.", Difficulty: "beginner"},
			{Name: "Audio Recording", Category: "Music", Reason: "Hear yourself honestly and share practice clips for feedback.", Difficulty: "beginner"},
		},
		roadmap: &types.Roadmap{
			Skill: "guitar",
			Steps: []types.RoadmapStep{
				{Order: 1, Title: "Setup and first chords", Description: "Hold the instrument, tune it, and learn E minor, A minor, and D. Build finger calluses with short daily sessions.", Duration: "2 weeks", Resources: []types.RoadmapResource{
					{Title: "Justin Guitar beginner course", Type: "course", URL: "https://www.justinguitar.com/"},
					{Title: "Guitar tuning guide", Type: "article"},
					{Title: "First chords video lesson", Type: "video"},
				}},
				{Order: 2, Title: "Chord changes and strumming", Description: "Smooth transitions between open chords and three strumming patterns, with a metronome.", Duration: "3 weeks", Resources: []types.RoadmapResource{
					{Title: "One-minute changes exercise", Type: "exercise"},
					{Title: "Strumming patterns breakdown", Type: "video"},
					{Title: "Free metronome apps compared", Type: "reference"},
				}},
				{Order: 3, Title: "First songs", Description: "Learn three songs you love that use your chords. Play them badly, then less badly, all the way through.", Duration: "3 weeks", Resources: []types.RoadmapResource{
					{Title: "Beginner song lists by chord set", Type: "article"},
					{Title: "Ultimate Guitar tabs and chords", Type: "reference", URL: "https://www.ultimate-guitar.com/"},
					{Title: "Play-along backing tracks", Type: "video"},
				}},
				{Order: 4, Title: "Barre chords and rhythm", Description: "The F barre shape, power chords, and keeping time with recordings.", Duration: "4 weeks", Resources: []types.RoadmapResource{
					{Title: "Barre chord technique lesson", Type: "video"},
					{Title: "Rhythm practice drills", Type: "exercise"},
					{Title: "Common barre chord songs", Type: "article"},
				}},
				{Order: 5, Title: "Play with people", Description: "Jam with another member, learn to follow a chord chart live, and perform one song for someone.", Duration: "4 weeks", Resources: []types.RoadmapResource{
					{Title: "Finding jam partners on SkillSwap", Type: "community"},
					{Title: "Reading chord charts", Type: "article"},
					{Title: "Stage fright basics", Type: "video"},
				}},
			},
		},
		quiz: []types.QuizQuestion{
			{Question: "What are the standard-tuning open string notes, low to high?", Options: []string{"E A D G B E", "E B G D A E", "A D G C E A", "D A D G A D"}, CorrectAnswerIndex: 0},
			{Question: "What does a capo do?", Options: []string{"Mutes the strings", "Raises the pitch of all strings by clamping a fret", "Holds the pick", "Changes string gauge"}, CorrectAnswerIndex: 1},
			{Question: "Which chords make up a basic G major progression (I-IV-V)?", Options: []string{"G, C, D", "G, A, B", "G, E, F", "G, D, F#"}, CorrectAnswerIndex: 0},
			{Question: "Why practice with a metronome?", Options: []string{"It tunes the guitar", "It builds steady timing, which matters more than speed", "It is required for tabs", "It strengthens fingers"}, CorrectAnswerIndex: 1},
			{Question: "What is a barre chord?", Options: []string{"A chord using only open strings", "A chord where one finger presses multiple strings across a fret", "A two-note chord", "A chord played behind the nut"}, CorrectAnswerIndex: 1},
		},
	},
}
