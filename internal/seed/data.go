package seed

import "trivia-quiz-service/internal/domain"

// Genres is the initial topic catalog.
var Genres = []domain.Genre{
	{
		ID:          "science",
		Name:        "Science",
		Description: "Test your knowledge of physics, chemistry, biology, and general scientific concepts",
		Icon:        "Atom",
		Color:       "text-blue-300",
		BgColor:     "from-blue-600 to-cyan-600",
	},
	{
		ID:          "history",
		Name:        "History",
		Description: "Explore major historical events, figures, and civilizations throughout time",
		Icon:        "Scroll",
		Color:       "text-amber-300",
		BgColor:     "from-amber-600 to-orange-600",
	},
	{
		ID:          "geography",
		Name:        "Geography",
		Description: "Discover world capitals, landmarks, countries, and geographical features",
		Icon:        "Globe",
		Color:       "text-green-300",
		BgColor:     "from-green-600 to-emerald-600",
	},
	{
		ID:          "sports",
		Name:        "Sports",
		Description: "Challenge yourself with sports trivia, rules, and famous athletes",
		Icon:        "Trophy",
		Color:       "text-red-300",
		BgColor:     "from-red-600 to-rose-600",
	},
	{
		ID:          "technology",
		Name:        "Technology",
		Description: "Stay up to date with tech trends, programming, and digital innovations",
		Icon:        "Laptop",
		Color:       "text-purple-300",
		BgColor:     "from-purple-600 to-violet-600",
	},
	{
		ID:          "music",
		Name:        "Music",
		Description: "Test your musical knowledge with questions about artists, genres, and theory",
		Icon:        "Music",
		Color:       "text-pink-300",
		BgColor:     "from-pink-600 to-fuchsia-600",
	},
	{
		ID:          "art",
		Name:        "Art",
		Description: "Explore famous artworks, artists, and art movements throughout history",
		Icon:        "Palette",
		Color:       "text-indigo-300",
		BgColor:     "from-indigo-600 to-purple-600",
	},
	{
		ID:          "mathematics",
		Name:        "Mathematics",
		Description: "Challenge your math skills with algebra, geometry, and problem-solving",
		Icon:        "Calculator",
		Color:       "text-teal-300",
		BgColor:     "from-teal-600 to-cyan-600",
	},
}

// Questions is the initial question bank, five per genre.
var Questions = map[string][]domain.Question{
	"science": {
		{
			ID:          "sci-1",
			Prompt:      "What is the chemical symbol for gold?",
			Options:     []string{"Go", "Au", "Ag", "Gd"},
			Correct:     1,
			Explanation: `Au comes from the Latin word "aurum" meaning gold.`,
		},
		{
			ID:          "sci-2",
			Prompt:      "Which planet is known as the Red Planet?",
			Options:     []string{"Venus", "Jupiter", "Mars", "Saturn"},
			Correct:     2,
			Explanation: "Mars appears red due to iron oxide (rust) on its surface.",
		},
		{
			ID:          "sci-3",
			Prompt:      "What is the speed of light in vacuum?",
			Options:     []string{"300,000 km/s", "299,792,458 m/s", "186,000 miles/s", "All of the above"},
			Correct:     3,
			Explanation: "The speed of light is a constant and can be expressed in different units.",
		},
		{
			ID:          "sci-4",
			Prompt:      "Which organ in the human body produces insulin?",
			Options:     []string{"Liver", "Kidney", "Pancreas", "Stomach"},
			Correct:     2,
			Explanation: "The pancreas produces insulin to regulate blood sugar levels.",
		},
		{
			ID:          "sci-5",
			Prompt:      "What is the most abundant gas in Earth's atmosphere?",
			Options:     []string{"Oxygen", "Carbon Dioxide", "Nitrogen", "Argon"},
			Correct:     2,
			Explanation: "Nitrogen makes up about 78% of Earth's atmosphere.",
		},
	},
	"history": {
		{
			ID:          "hist-1",
			Prompt:      "In which year did World War II end?",
			Options:     []string{"1944", "1945", "1946", "1947"},
			Correct:     1,
			Explanation: "World War II ended in 1945 with the surrender of Japan in September.",
		},
		{
			ID:          "hist-2",
			Prompt:      "Who was the first President of the United States?",
			Options:     []string{"Thomas Jefferson", "John Adams", "George Washington", "Benjamin Franklin"},
			Correct:     2,
			Explanation: "George Washington served as the first President from 1789 to 1797.",
		},
		{
			ID:          "hist-3",
			Prompt:      "The Berlin Wall fell in which year?",
			Options:     []string{"1987", "1989", "1991", "1993"},
			Correct:     1,
			Explanation: "The Berlin Wall fell on November 9, 1989, marking the end of the Cold War era.",
		},
		{
			ID:          "hist-4",
			Prompt:      "Which ancient wonder of the world was located in Alexandria?",
			Options:     []string{"Hanging Gardens", "Lighthouse of Alexandria", "Colossus of Rhodes", "Great Pyramid"},
			Correct:     1,
			Explanation: "The Lighthouse of Alexandria was one of the Seven Wonders of the Ancient World.",
		},
		{
			ID:          "hist-5",
			Prompt:      "The French Revolution began in which year?",
			Options:     []string{"1789", "1790", "1791", "1792"},
			Correct:     0,
			Explanation: "The French Revolution began in 1789 with the storming of the Bastille.",
		},
	},
	"geography": {
		{
			ID:          "geo-1",
			Prompt:      "What is the capital of Australia?",
			Options:     []string{"Sydney", "Melbourne", "Canberra", "Brisbane"},
			Correct:     2,
			Explanation: "Canberra is the capital city of Australia, not Sydney or Melbourne.",
		},
		{
			ID:          "geo-2",
			Prompt:      "Which is the longest river in the world?",
			Options:     []string{"Amazon", "Nile", "Yangtze", "Mississippi"},
			Correct:     1,
			Explanation: "The Nile River is approximately 6,650 kilometers long.",
		},
		{
			ID:          "geo-3",
			Prompt:      "Mount Everest is located in which mountain range?",
			Options:     []string{"Andes", "Himalayas", "Alps", "Rockies"},
			Correct:     1,
			Explanation: "Mount Everest is part of the Himalayan mountain range.",
		},
		{
			ID:          "geo-4",
			Prompt:      "Which country has the most time zones?",
			Options:     []string{"Russia", "United States", "China", "France"},
			Correct:     3,
			Explanation: "France has 12 time zones due to its overseas territories.",
		},
		{
			ID:          "geo-5",
			Prompt:      "The Sahara Desert is located in which continent?",
			Options:     []string{"Asia", "Australia", "Africa", "South America"},
			Correct:     2,
			Explanation: "The Sahara Desert covers much of North Africa.",
		},
	},
	"sports": {
		{
			ID:          "sport-1",
			Prompt:      "How many players are on a basketball team on the court at one time?",
			Options:     []string{"4", "5", "6", "7"},
			Correct:     1,
			Explanation: "Each basketball team has 5 players on the court at any given time.",
		},
		{
			ID:          "sport-2",
			Prompt:      "Which country won the FIFA World Cup in 2018?",
			Options:     []string{"Brazil", "Germany", "France", "Argentina"},
			Correct:     2,
			Explanation: "France won the 2018 FIFA World Cup held in Russia.",
		},
		{
			ID:          "sport-3",
			Prompt:      "In which sport would you perform a slam dunk?",
			Options:     []string{"Tennis", "Basketball", "Volleyball", "Baseball"},
			Correct:     1,
			Explanation: "A slam dunk is a basketball move where the player jumps and scores.",
		},
		{
			ID:          "sport-4",
			Prompt:      "How many rings are there in the Olympic Games symbol?",
			Options:     []string{"4", "5", "6", "7"},
			Correct:     1,
			Explanation: "The Olympic symbol has 5 interlocking rings representing the continents.",
		},
		{
			ID:          "sport-5",
			Prompt:      `Which sport is known as "The Beautiful Game"?`,
			Options:     []string{"Basketball", "Tennis", "Soccer/Football", "Golf"},
			Correct:     2,
			Explanation: `Soccer (football) is often called "The Beautiful Game".`,
		},
	},
	"technology": {
		{
			ID:          "tech-1",
			Prompt:      "Who is known as the co-founder of Microsoft?",
			Options:     []string{"Steve Jobs", "Bill Gates", "Mark Zuckerberg", "Larry Page"},
			Correct:     1,
			Explanation: "Bill Gates co-founded Microsoft with Paul Allen in 1975.",
		},
		{
			ID:          "tech-2",
			Prompt:      `What does "AI" stand for in technology?`,
			Options:     []string{"Automated Intelligence", "Artificial Intelligence", "Advanced Integration", "Automated Integration"},
			Correct:     1,
			Explanation: "AI stands for Artificial Intelligence.",
		},
		{
			ID:          "tech-3",
			Prompt:      "Which company developed the iPhone?",
			Options:     []string{"Samsung", "Google", "Apple", "Microsoft"},
			Correct:     2,
			Explanation: "Apple developed and released the first iPhone in 2007.",
		},
		{
			ID:          "tech-4",
			Prompt:      `What does "URL" stand for?`,
			Options:     []string{"Universal Resource Locator", "Uniform Resource Locator", "Universal Reference Link", "Uniform Reference Link"},
			Correct:     1,
			Explanation: "URL stands for Uniform Resource Locator.",
		},
		{
			ID:          "tech-5",
			Prompt:      "Which programming language is primarily used for web development styling?",
			Options:     []string{"JavaScript", "Python", "CSS", "Java"},
			Correct:     2,
			Explanation: "CSS (Cascading Style Sheets) is used for styling web pages.",
		},
	},
	"music": {
		{
			ID:          "music-1",
			Prompt:      "How many strings does a standard guitar have?",
			Options:     []string{"4", "5", "6", "7"},
			Correct:     2,
			Explanation: "A standard guitar has 6 strings.",
		},
		{
			ID:          "music-2",
			Prompt:      `Which composer wrote "The Four Seasons"?`,
			Options:     []string{"Bach", "Mozart", "Vivaldi", "Beethoven"},
			Correct:     2,
			Explanation: `Antonio Vivaldi composed "The Four Seasons" in 1725.`,
		},
		{
			ID:          "music-3",
			Prompt:      `What does "forte" mean in music?`,
			Options:     []string{"Soft", "Loud", "Fast", "Slow"},
			Correct:     1,
			Explanation: "Forte is a musical term meaning loud or strong.",
		},
		{
			ID:          "music-4",
			Prompt:      "Which instrument is Yo-Yo Ma famous for playing?",
			Options:     []string{"Violin", "Piano", "Cello", "Flute"},
			Correct:     2,
			Explanation: "Yo-Yo Ma is a world-renowned cellist.",
		},
		{
			ID:          "music-5",
			Prompt:      "How many keys are on a standard piano?",
			Options:     []string{"76", "88", "100", "104"},
			Correct:     1,
			Explanation: "A standard piano has 88 keys (52 white and 36 black).",
		},
	},
	"art": {
		{
			ID:          "art-1",
			Prompt:      "Who painted the Mona Lisa?",
			Options:     []string{"Michelangelo", "Leonardo da Vinci", "Pablo Picasso", "Vincent van Gogh"},
			Correct:     1,
			Explanation: "Leonardo da Vinci painted the Mona Lisa between 1503-1519.",
		},
		{
			ID:          "art-2",
			Prompt:      "Which art movement is Salvador Dalí associated with?",
			Options:     []string{"Cubism", "Impressionism", "Surrealism", "Abstract Expressionism"},
			Correct:     2,
			Explanation: "Salvador Dalí was a prominent figure in the Surrealist movement.",
		},
		{
			ID:          "art-3",
			Prompt:      "What are the three primary colors?",
			Options:     []string{"Red, Blue, Yellow", "Red, Green, Blue", "Blue, Yellow, Orange", "Red, Yellow, Green"},
			Correct:     0,
			Explanation: "The three primary colors are red, blue, and yellow.",
		},
		{
			ID:          "art-4",
			Prompt:      "Which museum houses the Mona Lisa?",
			Options:     []string{"Metropolitan Museum", "British Museum", "Louvre Museum", "Uffizi Gallery"},
			Correct:     2,
			Explanation: "The Mona Lisa is housed in the Louvre Museum in Paris.",
		},
		{
			ID:          "art-5",
			Prompt:      "Who sculpted the statue of David?",
			Options:     []string{"Donatello", "Michelangelo", "Rodin", "Bernini"},
			Correct:     1,
			Explanation: "Michelangelo sculpted the famous statue of David between 1501-1504.",
		},
	},
	"mathematics": {
		{
			ID:          "math-1",
			Prompt:      "What is the value of π (pi) to two decimal places?",
			Options:     []string{"3.14", "3.15", "3.16", "3.17"},
			Correct:     0,
			Explanation: "π (pi) is approximately 3.14159... or 3.14 to two decimal places.",
		},
		{
			ID:          "math-2",
			Prompt:      "What is the square root of 144?",
			Options:     []string{"11", "12", "13", "14"},
			Correct:     1,
			Explanation: "12 × 12 = 144, so the square root of 144 is 12.",
		},
		{
			ID:          "math-3",
			Prompt:      "In a right triangle, what is the longest side called?",
			Options:     []string{"Adjacent", "Opposite", "Hypotenuse", "Base"},
			Correct:     2,
			Explanation: "The hypotenuse is the longest side of a right triangle, opposite the right angle.",
		},
		{
			ID:          "math-4",
			Prompt:      "What is 15% of 200?",
			Options:     []string{"25", "30", "35", "40"},
			Correct:     1,
			Explanation: "15% of 200 = 0.15 × 200 = 30.",
		},
		{
			ID:          "math-5",
			Prompt:      "What comes next in the sequence: 2, 4, 8, 16, ...?",
			Options:     []string{"24", "30", "32", "36"},
			Correct:     2,
			Explanation: "This is a geometric sequence where each term is doubled: 16 × 2 = 32.",
		},
	},
}

// QuestionsWithGenre flattens the bank, stamping each question with its
// genre ID the way the persisted rows carry it.
func QuestionsWithGenre() []domain.Question {
	var out []domain.Question
	for _, g := range Genres {
		for _, q := range Questions[g.ID] {
			q.Genre = g.ID
			out = append(out, q)
		}
	}
	return out
}

// QuestionsByGenre returns the bank keyed by genre ID, with the genre
// stamped on each question.
func QuestionsByGenre() map[string][]domain.Question {
	out := make(map[string][]domain.Question, len(Questions))
	for genreID, qs := range Questions {
		stamped := make([]domain.Question, len(qs))
		for i, q := range qs {
			q.Genre = genreID
			stamped[i] = q
		}
		out[genreID] = stamped
	}
	return out
}
