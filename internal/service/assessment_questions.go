package service

import "talent-match/internal/domain"

const (
	directionFirst  = "first"
	directionSecond = "second"
)

func likert(f domain.Framework, id, trait, text string, reverse bool) domain.AssessmentQuestion {
	return domain.AssessmentQuestion{ID: id, Framework: f, Text: text, Trait: trait, Reverse: reverse}
}

func mbtiItem(id string, axis domain.MBTIAxis, direction, text string) domain.AssessmentQuestion {
	return domain.AssessmentQuestion{ID: id, Framework: domain.FrameworkMBTI, Text: text, Dimension: axis.String(), Direction: direction}
}

var bigFiveQuestions = []domain.AssessmentQuestion{
	likert(domain.FrameworkBigFive, "o1", "openness", "I enjoy trying new and unfamiliar things", false),
	likert(domain.FrameworkBigFive, "o2", "openness", "I have a vivid imagination", false),
	likert(domain.FrameworkBigFive, "o3", "openness", "I appreciate art and beauty", false),
	likert(domain.FrameworkBigFive, "o4", "openness", "I prefer routine over variety", true),
	likert(domain.FrameworkBigFive, "o5", "openness", "I am curious about many different things", false),
	likert(domain.FrameworkBigFive, "o6", "openness", "I enjoy philosophical discussions", false),

	likert(domain.FrameworkBigFive, "c1", "conscientiousness", "I am always prepared and organized", false),
	likert(domain.FrameworkBigFive, "c2", "conscientiousness", "I pay attention to details", false),
	likert(domain.FrameworkBigFive, "c3", "conscientiousness", "I often leave tasks until the last minute", true),
	likert(domain.FrameworkBigFive, "c4", "conscientiousness", "I make plans and stick to them", false),
	likert(domain.FrameworkBigFive, "c5", "conscientiousness", "I work hard to achieve my goals", false),
	likert(domain.FrameworkBigFive, "c6", "conscientiousness", "I am easily distracted", true),

	likert(domain.FrameworkBigFive, "e1", "extraversion", "I feel energized when around other people", false),
	likert(domain.FrameworkBigFive, "e2", "extraversion", "I enjoy being the center of attention", false),
	likert(domain.FrameworkBigFive, "e3", "extraversion", "I prefer to keep to myself", true),
	likert(domain.FrameworkBigFive, "e4", "extraversion", "I start conversations with strangers easily", false),
	likert(domain.FrameworkBigFive, "e5", "extraversion", "I feel comfortable in large social gatherings", false),
	likert(domain.FrameworkBigFive, "e6", "extraversion", "I need time alone to recharge", true),

	likert(domain.FrameworkBigFive, "a1", "agreeableness", "I am considerate and kind to others", false),
	likert(domain.FrameworkBigFive, "a2", "agreeableness", "I trust people easily", false),
	likert(domain.FrameworkBigFive, "a3", "agreeableness", "I often criticize others", true),
	likert(domain.FrameworkBigFive, "a4", "agreeableness", "I try to help others when I can", false),
	likert(domain.FrameworkBigFive, "a5", "agreeableness", "I value cooperation over competition", false),
	likert(domain.FrameworkBigFive, "a6", "agreeableness", "I am skeptical of others' intentions", true),

	likert(domain.FrameworkBigFive, "n1", "neuroticism", "I often feel stressed or anxious", false),
	likert(domain.FrameworkBigFive, "n2", "neuroticism", "My mood changes frequently", false),
	likert(domain.FrameworkBigFive, "n3", "neuroticism", "I stay calm under pressure", true),
	likert(domain.FrameworkBigFive, "n4", "neuroticism", "I worry about things that might go wrong", false),
	likert(domain.FrameworkBigFive, "n5", "neuroticism", "I am emotionally stable", true),
	likert(domain.FrameworkBigFive, "n6", "neuroticism", "I get irritated easily", false),
}

var discQuestions = []domain.AssessmentQuestion{
	likert(domain.FrameworkDISC, "d1", "dominance", "I am direct and assertive in my communication", false),
	likert(domain.FrameworkDISC, "d2", "dominance", "I enjoy taking charge and making decisions", false),
	likert(domain.FrameworkDISC, "d3", "dominance", "I am competitive and results-oriented", false),
	likert(domain.FrameworkDISC, "d4", "dominance", "I challenge the status quo and take risks", false),
	likert(domain.FrameworkDISC, "d5", "dominance", "I prefer to lead rather than follow", false),
	likert(domain.FrameworkDISC, "d6", "dominance", "I am comfortable with confrontation when necessary", false),

	likert(domain.FrameworkDISC, "i1", "influence", "I am enthusiastic and outgoing", false),
	likert(domain.FrameworkDISC, "i2", "influence", "I enjoy collaborating and working with others", false),
	likert(domain.FrameworkDISC, "i3", "influence", "I am persuasive and can inspire people", false),
	likert(domain.FrameworkDISC, "i4", "influence", "I prefer verbal communication over written", false),
	likert(domain.FrameworkDISC, "i5", "influence", "I am optimistic and see the positive side", false),
	likert(domain.FrameworkDISC, "i6", "influence", "I build relationships easily", false),

	likert(domain.FrameworkDISC, "s1", "steadiness", "I am patient and calm under pressure", false),
	likert(domain.FrameworkDISC, "s2", "steadiness", "I prefer stability and predictable routines", false),
	likert(domain.FrameworkDISC, "s3", "steadiness", "I am a good listener and supportive team member", false),
	likert(domain.FrameworkDISC, "s4", "steadiness", "I avoid conflict and seek harmony", false),
	likert(domain.FrameworkDISC, "s5", "steadiness", "I am loyal and dependable", false),
	likert(domain.FrameworkDISC, "s6", "steadiness", "I take time to make decisions carefully", false),

	likert(domain.FrameworkDISC, "c1", "conscientiousness", "I pay close attention to details and accuracy", false),
	likert(domain.FrameworkDISC, "c2", "conscientiousness", "I follow rules, procedures, and standards", false),
	likert(domain.FrameworkDISC, "c3", "conscientiousness", "I analyze data before making decisions", false),
	likert(domain.FrameworkDISC, "c4", "conscientiousness", "I value quality over speed", false),
	likert(domain.FrameworkDISC, "c5", "conscientiousness", "I am systematic and organized in my approach", false),
	likert(domain.FrameworkDISC, "c6", "conscientiousness", "I ask questions to ensure understanding", false),
}

var mbtiQuestions = []domain.AssessmentQuestion{
	mbtiItem("ie1", domain.AxisIE, directionFirst, "I prefer spending time alone or with close friends"),
	mbtiItem("ie2", domain.AxisIE, directionSecond, "I feel energized by social events and meeting new people"),
	mbtiItem("ie3", domain.AxisIE, directionFirst, "I think things through before speaking"),
	mbtiItem("ie4", domain.AxisIE, directionSecond, "I enjoy being the center of attention"),
	mbtiItem("ie5", domain.AxisIE, directionFirst, "I prefer written communication over verbal"),
	mbtiItem("ie6", domain.AxisIE, directionSecond, "I make friends easily in new situations"),
	mbtiItem("ie7", domain.AxisIE, directionFirst, "I need quiet time to recharge"),
	mbtiItem("ie8", domain.AxisIE, directionSecond, "I often speak before thinking"),

	mbtiItem("sn1", domain.AxisSN, directionFirst, "I focus on facts and details"),
	mbtiItem("sn2", domain.AxisSN, directionSecond, "I enjoy theoretical and abstract concepts"),
	mbtiItem("sn3", domain.AxisSN, directionFirst, "I prefer practical, hands-on learning"),
	mbtiItem("sn4", domain.AxisSN, directionSecond, "I often think about future possibilities"),
	mbtiItem("sn5", domain.AxisSN, directionFirst, "I trust established methods and procedures"),
	mbtiItem("sn6", domain.AxisSN, directionSecond, "I enjoy exploring new ideas and innovations"),
	mbtiItem("sn7", domain.AxisSN, directionFirst, "I pay attention to sensory details in my environment"),
	mbtiItem("sn8", domain.AxisSN, directionSecond, "I see patterns and connections easily"),

	mbtiItem("tf1", domain.AxisTF, directionFirst, "I make decisions based on logic and analysis"),
	mbtiItem("tf2", domain.AxisTF, directionSecond, "I consider people's feelings when making decisions"),
	mbtiItem("tf3", domain.AxisTF, directionFirst, "I value truth over tact"),
	mbtiItem("tf4", domain.AxisTF, directionSecond, "I try to maintain harmony in relationships"),
	mbtiItem("tf5", domain.AxisTF, directionFirst, "I prefer objective criticism over emotional support"),
	mbtiItem("tf6", domain.AxisTF, directionSecond, "I can easily sense others' emotions"),
	mbtiItem("tf7", domain.AxisTF, directionFirst, "I value fairness and consistency"),
	mbtiItem("tf8", domain.AxisTF, directionSecond, "I make exceptions based on individual circumstances"),

	mbtiItem("jp1", domain.AxisJP, directionFirst, "I like to plan ahead and stick to schedules"),
	mbtiItem("jp2", domain.AxisJP, directionSecond, "I prefer to keep my options open"),
	mbtiItem("jp3", domain.AxisJP, directionFirst, "I feel satisfied when tasks are completed"),
	mbtiItem("jp4", domain.AxisJP, directionSecond, "I work better close to deadlines"),
	mbtiItem("jp5", domain.AxisJP, directionFirst, "I like clear structure and organization"),
	mbtiItem("jp6", domain.AxisJP, directionSecond, "I adapt easily to changes in plans"),
	mbtiItem("jp7", domain.AxisJP, directionFirst, "I prefer to make decisions quickly"),
	mbtiItem("jp8", domain.AxisJP, directionSecond, "I enjoy exploring multiple alternatives"),
}
