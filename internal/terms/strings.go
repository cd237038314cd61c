package terms

const (
	fallbackExplanation = "Potentially unfavorable term for your business."
	fallbackAlternative = "Consult legal advisor for specific alternatives."
)

var explanations = map[string]string{
	"Psychological Manipulation": "🚨 CRITICAL: This clause uses predatory psychological tactics to manipulate your mental and emotional state. NO legitimate contract should ever reference custody of your thoughts, emotions, fears, or psychological well-being.",
	"Emotional Manipulation":     "⚠️ WARNING: This clause uses emotionally charged language that may pressure you psychologically. References to self-worth, comparison, and emotional states are inappropriate in contracts.",
	"Unlimited Liability":        "Exposes you to unlimited financial risk without any cap or protection.",
	"Waiver of Rights":           "You may be giving up important legal rights or protections.",
	"Unilateral Amendment":       "Other party can change terms without your consent.",
	"Exclusive Remedy":           "Limits your options if things go wrong.",
	"No Warranty":                "No guarantees about quality or fitness for purpose.",
	"Indefinite Term":            "No clear end date may make it difficult to exit.",
	"Broad Assignment":           "Other party can transfer obligations to unknown third parties.",
	"Excessive Notice":           "Very long notice period required for termination.",
}

var alternatives = map[string]string{
	"Psychological Manipulation": "DO NOT SIGN THIS DOCUMENT. This is not a legitimate contract. Report to appropriate authorities. Seek immediate legal counsel. No negotiation is possible with manipulative psychological clauses - they must be completely removed.",
	"Emotional Manipulation":     "Request removal of all emotionally manipulative language. Contracts should use neutral, objective language. If the other party refuses, reconsider the relationship and seek legal advice.",
	"Unlimited Liability":        "Negotiate a liability cap equal to contract value or a specific amount.",
	"Waiver of Rights":           "Remove waiver clause or limit to specific, known rights.",
	"Unilateral Amendment":       "Require mutual consent for any amendments.",
	"Exclusive Remedy":           "Retain right to pursue additional remedies for material breaches.",
	"No Warranty":                "Request basic warranties about quality and fitness for purpose.",
	"Indefinite Term":            "Add a fixed term with renewal option or termination rights.",
	"Broad Assignment":           "Require your written consent for any assignment.",
	"Excessive Notice":           "Negotiate shorter notice period (30-60 days).",
}

// Hindi coverage is partial; archetypes without an entry fall back to
// the English strings above.
var hindiExplanations = map[string]string{
	"Psychological Manipulation": "🚨 अत्यंत महत्वपूर्ण: यह खंड आपकी मानसिक और भावनात्मक स्थिति में हेरफेर करने के लिए शिकारी मनोवैज्ञानिक रणनीति का उपयोग करता है। किसी भी कानूनी अनुबंध में आपके विचारों या भावनाओं का उल्लेख नहीं होना चाहिए।",
	"Emotional Manipulation":     "⚠️ चेतावनी: यह खंड भावनात्मक रूप से आवेशित भाषा का उपयोग करता है। अनुबंधों में आत्म-मूल्य और भावनात्मक स्थितियों का उल्लेख अनुचित है।",
	"Unlimited Liability":        "यह आपको बिना किसी सीमा या सुरक्षा के असीमित वित्तीय जोखिम में डालता है।",
	"Waiver of Rights":           "आप महत्वपूर्ण कानूनी अधिकारों या सुरक्षा को छोड़ सकते हैं।",
	"Unilateral Amendment":       "दूसरी पार्टी आपकी सहमति के बिना शर्तों को बदल सकती है।",
}

var hindiAlternatives = map[string]string{
	"Psychological Manipulation": "इस दस्तावेज़ पर हस्ताक्षर न करें। यह एक वैध अनुबंध नहीं है। उचित अधिकारियों को रिपोर्ट करें। कानूनी सलाह लें।",
	"Emotional Manipulation":     "भावनात्मक हेरफेर वाली भाषा को हटाने का अनुरोध करें। अनुबंधों में निष्पक्ष भाषा का उपयोग होना चाहिए।",
	"Unlimited Liability":        "अनुबंध मूल्य के बराबर या एक विशिष्ट राशि की देयता सीमा (liability cap) पर बातचीत करें।",
	"Waiver of Rights":           "अधिकारों के त्याग वाले खंड को हटा दें या इसे सीमित करें।",
	"Unilateral Amendment":       "किसी भी संशोधन के लिए आपसी सहमति की आवश्यकता की शर्त जोड़ें।",
}
