package database

import (
	"log"

	"github.com/antonyth18/enigma-webgame/models"
)

var hawkinsQuestions = []models.Question{
	{Title: "Access Code Decryption", Description: "Decrypt the security access code to unlock the first containment chamber. Time is running out.", Points: 100, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Specimen Database Query", Description: "Query the corrupted specimen database. Find the pattern in the chaos before the system purges.", Points: 150, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Power Grid Restoration", Description: "Restore power to the emergency containment systems. Calculate the correct circuit configuration.", Points: 200, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Biometric Override", Description: "Override the biometric security protocols. The specimens are escaping - act fast.", Points: 250, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Neural Network Analysis", Description: "Analyze the neural network patterns from Experiment 001. The data is fragmenting.", Points: 300, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Chemical Formula Sequence", Description: "Decode the chemical formula sequence. One wrong calculation could be catastrophic.", Points: 350, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Memory Reconstruction", Description: "Reconstruct fragmented memory patterns from the test subjects. Find the hidden message.", Points: 400, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Security Clearance Escalation", Description: "Escalate your security clearance through the multi-layered authentication system.", Points: 450, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "AI Core Logic Puzzle", Description: "Solve the AI core logic puzzle. The Director is watching your every move.", Points: 500, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Facility Lockdown Override", Description: "Override the facility-wide lockdown. All exits are sealed - find the master code.", Points: 600, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Quantum Encryption Break", Description: "Break through the quantum encryption protecting the core systems. Time and space are unstable.", Points: 700, CorrectAnswer: "test", World: models.WorldHawkins},
	{Title: "Final Shutdown Sequence", Description: "Execute the final shutdown sequence. The fate of Hawkins depends on your success.", Points: 1000, CorrectAnswer: "test", World: models.WorldHawkins},
}

var upsideDownQuestions = []models.Question{
	{Title: "String Reversal in the Void", Description: "Write a function that reverses a string. The darkness consumes all forward motion - only backwards can you escape.", Points: 100, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Array Manipulation Through Darkness", Description: "Find the maximum value in an array corrupted by the Upside Down. Numbers shift and change - locate the strongest.", Points: 150, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Loop Through the Upside Down", Description: "Create a loop that traverses a nested structure. Each layer is darker than the last. Navigate wisely.", Points: 200, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Conditional Logic in Corrupted Space", Description: "Implement conditional branching where truth itself is unstable. The Mind Flayer distorts reality - find the correct path.", Points: 250, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Recursive Descent into the Void", Description: "Build a recursive function that explores infinite depth. Each call takes you deeper into the Upside Down.", Points: 300, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Binary Search Through Dimensions", Description: "Search through parallel dimensions using binary search. Time is fracturing - find the target before it is too late.", Points: 350, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Dynamic Programming in Chaos", Description: "Optimize a chaotic system using dynamic programming. Memory itself is corrupted - cache your solutions carefully.", Points: 400, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Graph Traversal Through Portals", Description: "Navigate a graph where edges are unstable portals. Find the shortest path before the connections collapse.", Points: 450, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Advanced Tree Traversal in Darkness", Description: "Traverse a corrupted binary tree where nodes shift between dimensions. Balance is lost - restore order.", Points: 500, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Complex System Design Under Pressure", Description: "Design a system that can withstand the Mind Flayer corruption. Architecture must be resilient against supernatural forces.", Points: 600, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "Optimization Through Supernatural Forces", Description: "Optimize an algorithm under impossible constraints. Time and space itself are warping - efficiency is survival.", Points: 700, CorrectAnswer: "test", World: models.WorldUpsideDown},
	{Title: "The Final Algorithm", Description: "Face the ultimate challenge. The Mind Flayer essence is encoded in this algorithm. Solve it to close the portal forever.", Points: 1000, CorrectAnswer: "test", World: models.WorldUpsideDown},
}

// SeedQuestions replaces all question, answer and hint rows with the fixed
// question set. The two lists must stay index-aligned: position i in one
// world pairs with position i in the other.
func SeedQuestions() {
	log.Println("Seeding questions...")

	err := DB.Exec("DELETE FROM enigma_answer").Error
	if err == nil {
		err = DB.Exec("DELETE FROM enigma_hint").Error
	}
	if err == nil {
		err = DB.Exec("DELETE FROM enigma_question").Error
	}
	if err != nil {
		log.Fatal("Failed to clear question data:", err)
	}

	for _, q := range hawkinsQuestions {
		if err := DB.Create(&q).Error; err != nil {
			log.Fatal("Failed to seed question:", err)
		}
	}
	for _, q := range upsideDownQuestions {
		if err := DB.Create(&q).Error; err != nil {
			log.Fatal("Failed to seed question:", err)
		}
	}

	log.Println("Seeding finished")
}
