// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request and response types.

# Domain Types

  - Question: prompt text and publication date
  - Choice: an answer belonging to one question, with its vote count
  - QuestionWithChoices: a question together with its choices

A question is recent when it was published within the last day:

	q.WasPublishedRecently(time.Now())

# Request Types

  - CreateQuestionRequest: question_text, optional pub_date
  - AddChoiceRequest: choice_text

# Response Types

  - CreateQuestionResponse: question_id, admin_key
  - AddChoiceResponse: choice_id
  - ErrorResponse: error, message

# Errors

ErrQuestionNotFound and ErrChoiceNotFound are returned by lookups and
compared with errors.Is.
*/
package models
