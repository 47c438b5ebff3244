package bible

import "strings"

// Testament splits the book catalog into its two shelves.
type Testament string

const (
	TestamentHebrew Testament = "hebrew"
	TestamentGreek  Testament = "greek"
)

// Book is one entry of the 66-book catalog.
type Book struct {
	Number       int
	Abbreviation string
	Title        string
	Testament    Testament
}

var books = []Book{
	{1, "Gen", "Genesis", TestamentHebrew},
	{2, "Ex", "Exodus", TestamentHebrew},
	{3, "Lev", "Leviticus", TestamentHebrew},
	{4, "Num", "Numbers", TestamentHebrew},
	{5, "Deut", "Deuteronomy", TestamentHebrew},
	{6, "Josh", "Joshua", TestamentHebrew},
	{7, "Judg", "Judges", TestamentHebrew},
	{8, "Ruth", "Ruth", TestamentHebrew},
	{9, "1 Sam", "1 Samuel", TestamentHebrew},
	{10, "2 Sam", "2 Samuel", TestamentHebrew},
	{11, "1 Ki", "1 Kings", TestamentHebrew},
	{12, "2 Ki", "2 Kings", TestamentHebrew},
	{13, "1 Chron", "1 Chronicles", TestamentHebrew},
	{14, "2 Chron", "2 Chronicles", TestamentHebrew},
	{15, "Ezra", "Ezra", TestamentHebrew},
	{16, "Neh", "Nehemiah", TestamentHebrew},
	{17, "Esther", "Esther", TestamentHebrew},
	{18, "Job", "Job", TestamentHebrew},
	{19, "Ps", "Psalms", TestamentHebrew},
	{20, "Prov", "Proverbs", TestamentHebrew},
	{21, "Eccl", "Ecclesiastes", TestamentHebrew},
	{22, "Song", "Song of Solomon", TestamentHebrew},
	{23, "Isa", "Isaiah", TestamentHebrew},
	{24, "Jer", "Jeremiah", TestamentHebrew},
	{25, "Lam", "Lamentations", TestamentHebrew},
	{26, "Ezek", "Ezekiel", TestamentHebrew},
	{27, "Dan", "Daniel", TestamentHebrew},
	{28, "Hos", "Hosea", TestamentHebrew},
	{29, "Joel", "Joel", TestamentHebrew},
	{30, "Amos", "Amos", TestamentHebrew},
	{31, "Obad", "Obadiah", TestamentHebrew},
	{32, "Jonah", "Jonah", TestamentHebrew},
	{33, "Mic", "Micah", TestamentHebrew},
	{34, "Nah", "Nahum", TestamentHebrew},
	{35, "Hab", "Habakkuk", TestamentHebrew},
	{36, "Zeph", "Zephaniah", TestamentHebrew},
	{37, "Hag", "Haggai", TestamentHebrew},
	{38, "Zech", "Zechariah", TestamentHebrew},
	{39, "Mal", "Malachi", TestamentHebrew},
	{40, "Matt", "Matthew", TestamentGreek},
	{41, "Mark", "Mark", TestamentGreek},
	{42, "Luke", "Luke", TestamentGreek},
	{43, "John", "John", TestamentGreek},
	{44, "Acts", "Acts", TestamentGreek},
	{45, "Rom", "Romans", TestamentGreek},
	{46, "1 Cor", "1 Corinthians", TestamentGreek},
	{47, "2 Cor", "2 Corinthians", TestamentGreek},
	{48, "Gal", "Galatians", TestamentGreek},
	{49, "Eph", "Ephesians", TestamentGreek},
	{50, "Phil", "Philippians", TestamentGreek},
	{51, "Col", "Colossians", TestamentGreek},
	{52, "1 Thes", "1 Thessalonians", TestamentGreek},
	{53, "2 Thes", "2 Thessalonians", TestamentGreek},
	{54, "1 Tim", "1 Timothy", TestamentGreek},
	{55, "2 Tim", "2 Timothy", TestamentGreek},
	{56, "Titus", "Titus", TestamentGreek},
	{57, "Philem", "Philemon", TestamentGreek},
	{58, "Heb", "Hebrews", TestamentGreek},
	{59, "Jas", "James", TestamentGreek},
	{60, "1 Pet", "1 Peter", TestamentGreek},
	{61, "2 Pet", "2 Peter", TestamentGreek},
	{62, "1 John", "1 John", TestamentGreek},
	{63, "2 John", "2 John", TestamentGreek},
	{64, "3 John", "3 John", TestamentGreek},
	{65, "Jude", "Jude", TestamentGreek},
	{66, "Rev", "Revelation", TestamentGreek},
}

// BooksFor returns the books of one testament in canonical order.
func BooksFor(testament Testament) []Book {
	var out []Book
	for _, b := range books {
		if b.Testament == testament {
			out = append(out, b)
		}
	}
	return out
}

// BookByNumber returns the book with the given canonical number.
func BookByNumber(number int) (Book, bool) {
	if number < 1 || number > len(books) {
		return Book{}, false
	}
	return books[number-1], true
}

// FindByName matches a free-form title against book titles and abbreviations.
// Catalog entries sometimes omit the book number and only carry a title like
// "Genesis - Chapter 3".
func FindByName(text string) (Book, bool) {
	normalized := strings.ToLower(text)
	for _, b := range books {
		if strings.Contains(normalized, strings.ToLower(b.Title)) ||
			strings.Contains(normalized, strings.ToLower(b.Abbreviation)) {
			return b, true
		}
	}
	return Book{}, false
}
