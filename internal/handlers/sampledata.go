package handlers

import "skillnest-ai-service/internal/models"

// sampleMLTranscript is the built-in transcript used by the test-sample
// endpoint to exercise summarization and Q&A without external content.
var sampleMLTranscript = []models.TranscriptSegment{
	{Timestamp: "00:00", Text: "Welcome to today's lecture on machine learning fundamentals.", Speaker: "Instructor"},
	{Timestamp: "00:15", Text: "Machine learning is a subset of artificial intelligence that enables computers to learn from data without being explicitly programmed.", Speaker: "Instructor"},
	{Timestamp: "00:45", Text: "There are three main types of machine learning: supervised learning, unsupervised learning, and reinforcement learning.", Speaker: "Instructor"},
	{Timestamp: "01:20", Text: "In supervised learning, we train models using labeled data. The algorithm learns to map inputs to known outputs.", Speaker: "Instructor"},
	{Timestamp: "02:00", Text: "Unsupervised learning works with unlabeled data to discover hidden patterns and structures.", Speaker: "Instructor"},
	{Timestamp: "02:40", Text: "Reinforcement learning trains agents through rewards and penalties as they interact with an environment.", Speaker: "Instructor"},
	{Timestamp: "03:15", Text: "Remember, the quality of your training data directly affects model performance. This is a key principle.", Speaker: "Instructor"},
	{Timestamp: "03:50", Text: "Next week we will cover neural networks and deep learning in more detail.", Speaker: "Instructor"},
}

// showcaseTranscripts are the sample registry entries loaded by the seed
// endpoint for demos and local development.
var showcaseTranscripts = []models.VideoTranscript{
	{
		VideoID:  "sample-react-intro",
		CourseID: "demo-course",
		Title:    "Introduction to React",
		Duration: "04:30",
		Transcript: []models.TranscriptSegment{
			{Timestamp: "00:00", Text: "Welcome to this introduction to React, a JavaScript library for building user interfaces."},
			{Timestamp: "00:30", Text: "React is built around components. A component is a reusable piece of UI with its own logic and appearance."},
			{Timestamp: "01:10", Text: "Important: components receive data through props and manage their own internal state with hooks."},
			{Timestamp: "02:00", Text: "The useState hook lets a function component hold state between renders."},
			{Timestamp: "02:50", Text: "The useEffect hook runs side effects such as data fetching after the component renders."},
			{Timestamp: "03:40", Text: "Remember, React re-renders a component whenever its state or props change."},
		},
	},
	{
		VideoID:  "sample-python-basics",
		CourseID: "demo-course",
		Title:    "Python Programming Basics",
		Duration: "05:00",
		Transcript: []models.TranscriptSegment{
			{Timestamp: "00:00", Text: "This lesson covers the basics of Python programming."},
			{Timestamp: "00:40", Text: "Python is an interpreted language with dynamic typing, which makes it great for beginners."},
			{Timestamp: "01:20", Text: "Variables in Python do not need type declarations. You simply assign a value with the equals sign."},
			{Timestamp: "02:10", Text: "Key point: Python uses indentation instead of braces to define code blocks."},
			{Timestamp: "03:00", Text: "Lists, dictionaries, and tuples are the core built-in data structures you will use every day."},
			{Timestamp: "04:00", Text: "Note that functions are defined with the def keyword and can return multiple values."},
		},
	},
	{
		VideoID:  "sample-js-async",
		CourseID: "demo-course",
		Title:    "Asynchronous JavaScript",
		Duration: "04:45",
		Transcript: []models.TranscriptSegment{
			{Timestamp: "00:00", Text: "Today we explore asynchronous programming in JavaScript."},
			{Timestamp: "00:35", Text: "JavaScript is single threaded, so long running work must not block the main thread."},
			{Timestamp: "01:15", Text: "Callbacks were the original pattern, but they lead to deeply nested code."},
			{Timestamp: "02:00", Text: "Promises represent a value that will be available in the future, and they chain with then and catch."},
			{Timestamp: "02:55", Text: "Important: async and await are syntax on top of promises that make asynchronous code read like synchronous code."},
			{Timestamp: "03:45", Text: "Remember to handle rejections, otherwise errors disappear silently."},
		},
	},
}
