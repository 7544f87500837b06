package algorithms

// MatchedSkills возвращает пересечение требований вакансии и навыков
// пользователя. Сравнение точное и чувствительное к регистру; порядок
// следования требований сохраняется.
func MatchedSkills(requirements, skills []string) []string {
	if len(requirements) == 0 || len(skills) == 0 {
		return nil
	}

	skillSet := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		skillSet[s] = struct{}{}
	}

	var matched []string
	seen := make(map[string]struct{})
	for _, req := range requirements {
		if _, ok := skillSet[req]; !ok {
			continue
		}
		if _, dup := seen[req]; dup {
			continue
		}
		seen[req] = struct{}{}
		matched = append(matched, req)
	}
	return matched
}

// Matches сообщает, есть ли хотя бы одно пересечение.
// Любое совпадение квалифицирует вакансию - ранжирования нет.
func Matches(requirements, skills []string) bool {
	return len(MatchedSkills(requirements, skills)) > 0
}
