package chat

import "math/rand"

// cannedPool is served when no Gemini key is configured so the chatbot
// still answers in local setups.
var cannedPool = []string{
	"Current tomato prices: Delhi ₹28/kg, Mumbai ₹32/kg, Bangalore ₹25/kg.",
	"कीड़ों की समस्या के लिए: 1) नीम का तेल छिड़कें, 2) जैविक कीटनाशक का उपयोग करें।",
	"Best wheat planting time in Punjab: October 15 - November 15.",
	"आज का मौसम: सुबह धूप, दोपहर में हल्की बादल। तापमान: 25-32°C।",
	"Fertilizer deals available: DAP at ₹1,250/bag (10% off), Urea at ₹280/bag.",
	"आज सबसे ज्यादा मांग: टमाटर (+15%), प्याज (+8%), आलू (+12%)।",
}

// CannedResponse picks one response from the fixed pool uniformly at random.
func CannedResponse() string {
	return cannedPool[rand.Intn(len(cannedPool))]
}
