package ai

import "strings"

// ConversionInstruction asks the model to translate a Firebird query to PostgreSQL.
const ConversionInstruction = "Convert the given Firebird SQL query into PostgreSQL syntax while preserving its original logic. " +
	"Apply PostgreSQL-specific rules and best practices.\n\n" +
	"Output the following in a single SQL file:\n" +
	"1. The original Firebird SQL query, commented at the beginning of the file, for reference.\n" +
	"2. The translated PostgreSQL query, with detailed comments explaining:\n" +
	"   - Changes made to adapt to PostgreSQL syntax.\n" +
	"   - Differences in data types, constructs, or functions, if applicable.\n\n" +
	"Ensure that the translated query maintains the same functionality and intent as the original."

// TestInstruction asks the model for a test SQL file covering a PostgreSQL query.
const TestInstruction = "Generate a set of test cases for the given PostgreSQL query. " +
	"The input query is a translated version of a Firebird SQL query.\n\n" +
	"Output the following in a test SQL file:\n" +
	"1. A detailed comment at the top explaining the purpose of the tests.\n" +
	"2. A test to verify the existence of the target table or structure, using PostgreSQL's information_schema.\n" +
	"3. A test to validate the syntax and execution plan of the query using EXPLAIN.\n" +
	"4. Optional example test cases that validate the correctness of the query's results, such as:\n" +
	"   - Expected row counts.\n" +
	"   - Verifying specific output fields or conditions.\n\n" +
	"Ensure that each test includes clear comments to explain its purpose and how it relates to the original query."

// BuildPrompt joins an instruction and the upload text with a blank line.
// Neither part is escaped or truncated.
func BuildPrompt(instruction, content string) string {
	var b strings.Builder
	b.Grow(len(instruction) + len(content) + 2)
	b.WriteString(instruction)
	b.WriteString("\n\n")
	b.WriteString(content)
	return b.String()
}

func BuildConversionPrompt(content string) string {
	return BuildPrompt(ConversionInstruction, content)
}

func BuildTestPrompt(content string) string {
	return BuildPrompt(TestInstruction, content)
}
