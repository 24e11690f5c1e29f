package note

// Seed returns the sample notes an empty whiteboard starts with, newest first.
func Seed() []Note {
	notes := []Note{
		{ID: "1", Date: "June 22, 2025", Category: CategoryStudy, Content: "The sheer volume of information in medicine is overwhelming. Build a conceptual framework instead of memorizing isolated facts. #study"},
		{ID: "2", Date: "June 20, 2025", Category: CategoryClinical, Content: "Spent an hour listening to a patient's life story. It had nothing to do with the chief complaint and probably helped more than any prescription."},
		{ID: "3", Date: "May 15, 2025", Category: CategoryStudy, Content: "The Krebs cycle is the metabolic engine of the cell, a process and not a diagram. #biochem"},
		{ID: "4", Date: "May 5, 2025", Category: CategoryReflection, Content: "The differential diagnosis is a mental muscle. The more you use it, the faster it gets."},
		{ID: "5", Date: "April 22, 2025", Category: CategoryReflection, Content: "Why do we still use pagers? It feels like carrying a fossil."},
		{ID: "6", Date: "March 28, 2025", Category: CategoryStudy, Content: "Finally understood the renin-angiotensin-aldosterone system today. #physiology"},
		{ID: "7", Date: "March 10, 2025", Category: CategoryClinical, Content: "Textbooks give you black and white. Patients live in the gray."},
		{ID: "8", Date: "February 1, 2025", Category: CategoryReflection, Content: "Some days you feel like you know nothing. Then you remember how far you've come."},
		{ID: "9", Date: "January 15, 2025", Category: CategoryReflection, Content: "Coffee is my lifeblood. And maybe a little dark chocolate."},
		{ID: "10", Date: "December 25, 2024", Category: CategoryClinical, Content: "On call on Christmas Day. The hospital has a strange, quiet magic to it tonight."},
		{ID: "11", Date: "November 11, 2024", Category: CategoryQuote, Author: "Leonardo da Vinci", Content: "The human foot is a masterpiece of engineering and a work of art."},
		{ID: "12", Date: "October 5, 2024", Category: CategoryStudy, Content: "Suturing takes so much practice. My first attempts looked like a toddler's art project. #skills"},
		{ID: "13", Date: "September 1, 2023", Category: CategoryReflection, Content: "First day of medical school. No idea what I'm doing, but I'm excited."},
	}
	for i := range notes {
		notes[i].Tags = tagsFor(notes[i].Content)
	}
	return notes
}
